package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/geocoder89/campushub/internal/cache"
	"github.com/geocoder89/campushub/internal/config"
	"github.com/geocoder89/campushub/internal/domain/student"
	"github.com/gin-gonic/gin"
)

type StudentsStore interface {
	List(ctx context.Context) ([]student.Student, error)
	GetByID(ctx context.Context, id string) (student.Student, error)
	Create(ctx context.Context, req student.UpsertStudentRequest) (student.Student, error)
	Replace(ctx context.Context, id string, req student.UpsertStudentRequest) error
	Delete(ctx context.Context, id string) error
}

type StudentsHandler struct {
	repo  StudentsStore
	cache cache.Cache // nil disables caching
}

func NewStudentsHandler(repo StudentsStore, c cache.Cache) *StudentsHandler {
	return &StudentsHandler{repo: repo, cache: c}
}

const studentsListKey = "students"

func studentKey(id string) string {
	return "students:" + id
}

func (h *StudentsHandler) ListStudents(ctx *gin.Context) {
	if h.cache != nil {
		if b, ok := h.cache.Get(ctx.Request.Context(), studentsListKey); ok {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
			return
		}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	students, err := h.repo.List(cctx)

	if err != nil {
		RespondRepoError(ctx, err, "Student not found")
		return
	}

	if h.cache != nil {
		if b, err := json.Marshal(students); err == nil {
			h.cache.Set(ctx.Request.Context(), studentsListKey, b)
		}
	}

	ctx.JSON(http.StatusOK, students)
}

func (h *StudentsHandler) GetStudentById(ctx *gin.Context) {
	id := ctx.Param("id")

	if h.cache != nil {
		if b, ok := h.cache.Get(ctx.Request.Context(), studentKey(id)); ok {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
			return
		}
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	s, err := h.repo.GetByID(cctx, id)

	if err != nil {
		RespondRepoError(ctx, err, "Student not found")
		return
	}

	if h.cache != nil {
		if b, err := json.Marshal(s); err == nil {
			h.cache.Set(ctx.Request.Context(), studentKey(id), b)
		}
	}

	ctx.JSON(http.StatusOK, s)
}

func (h *StudentsHandler) CreateStudent(ctx *gin.Context) {
	var req student.UpsertStudentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	s, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondRepoError(ctx, err, "Student not found")
		return
	}

	h.invalidate(ctx, s.ID)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Student created",
		"id":      s.ID,
	})
}

func (h *StudentsHandler) UpdateStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	var req student.UpsertStudentRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Replace(cctx, id, req)

	if err != nil {
		RespondRepoError(ctx, err, "Student not found")
		return
	}

	h.invalidate(ctx, id)

	ctx.Status(http.StatusNoContent)
}

func (h *StudentsHandler) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.repo.Delete(cctx, id)

	if err != nil {
		RespondRepoError(ctx, err, "Student not found")
		return
	}

	h.invalidate(ctx, id)

	ctx.Status(http.StatusNoContent)
}

func (h *StudentsHandler) invalidate(ctx *gin.Context, id string) {
	if h.cache == nil {
		return
	}

	h.cache.Delete(ctx.Request.Context(), studentsListKey, studentKey(id))
}
