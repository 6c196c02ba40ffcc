package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/geocoder89/campushub/internal/cache"
	"github.com/geocoder89/campushub/internal/config"
	"github.com/geocoder89/campushub/internal/domain/course"
	"github.com/gin-gonic/gin"
)

type CoursesStore interface {
	List(ctx context.Context) ([]course.Course, error)
	GetByID(ctx context.Context, id string) (course.Course, error)
	Create(ctx context.Context, req course.UpsertCourseRequest) (course.Course, error)
	Replace(ctx context.Context, id string, req course.UpsertCourseRequest) error
	Delete(ctx context.Context, id string) error
}

type CoursesHandler struct {
	repo  CoursesStore
	cache cache.Cache // nil disables caching
}

func NewCoursesHandler(repo CoursesStore, c cache.Cache) *CoursesHandler {
	return &CoursesHandler{repo: repo, cache: c}
}

const coursesListKey = "courses"

func courseKey(id string) string {
	return "courses:" + id
}

func (h *CoursesHandler) ListCourses(ctx *gin.Context) {
	if h.cache != nil {
		if b, ok := h.cache.Get(ctx.Request.Context(), coursesListKey); ok {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
			return
		}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	courses, err := h.repo.List(cctx)

	if err != nil {
		RespondRepoError(ctx, err, "Course not found")
		return
	}

	if h.cache != nil {
		if b, err := json.Marshal(courses); err == nil {
			h.cache.Set(ctx.Request.Context(), coursesListKey, b)
		}
	}

	ctx.JSON(http.StatusOK, courses)
}

func (h *CoursesHandler) GetCourseById(ctx *gin.Context) {
	id := ctx.Param("id")

	if h.cache != nil {
		if b, ok := h.cache.Get(ctx.Request.Context(), courseKey(id)); ok {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
			return
		}
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	c, err := h.repo.GetByID(cctx, id)

	if err != nil {
		RespondRepoError(ctx, err, "Course not found")
		return
	}

	if h.cache != nil {
		if b, err := json.Marshal(c); err == nil {
			h.cache.Set(ctx.Request.Context(), courseKey(id), b)
		}
	}

	ctx.JSON(http.StatusOK, c)
}

func (h *CoursesHandler) CreateCourse(ctx *gin.Context) {
	var req course.UpsertCourseRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	c, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondRepoError(ctx, err, "Course not found")
		return
	}

	h.invalidate(ctx, c.ID)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Course created",
		"id":      c.ID,
	})
}

func (h *CoursesHandler) UpdateCourse(ctx *gin.Context) {
	id := ctx.Param("id")

	var req course.UpsertCourseRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Replace(cctx, id, req)

	if err != nil {
		RespondRepoError(ctx, err, "Course not found")
		return
	}

	h.invalidate(ctx, id)

	ctx.Status(http.StatusNoContent)
}

func (h *CoursesHandler) DeleteCourse(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		RespondRepoError(ctx, err, "Course not found")
		return
	}

	h.invalidate(ctx, id)

	ctx.Status(http.StatusNoContent)
}

func (h *CoursesHandler) invalidate(ctx *gin.Context, id string) {
	if h.cache == nil {
		return
	}

	h.cache.Delete(ctx.Request.Context(), coursesListKey, courseKey(id))
}
