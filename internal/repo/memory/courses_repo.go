package memory

import (
	"context"
	"sync"
	"time"

	"github.com/geocoder89/campushub/internal/domain/course"
	"github.com/geocoder89/campushub/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoursesRepo struct {
	mu    sync.RWMutex
	items map[string]course.Course
}

func NewCoursesRepo() *CoursesRepo {
	return &CoursesRepo{
		items: make(map[string]course.Course),
	}
}

func (r *CoursesRepo) List(ctx context.Context) ([]course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]course.Course, 0, len(r.items))

	for _, c := range r.items {
		out = append(out, c)
	}

	return out, nil
}

func (r *CoursesRepo) GetByID(ctx context.Context, id string) (course.Course, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return course.Course{}, repo.ErrInvalidID
	}

	r.mu.RLock()
	c, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return course.Course{}, repo.ErrNotFound
	}

	return c, nil
}

func (r *CoursesRepo) Create(ctx context.Context, req course.UpsertCourseRequest) (course.Course, error) {
	c := course.Course{
		ID:         primitive.NewObjectID().Hex(),
		Name:       req.Name,
		Code:       req.Code,
		Instructor: req.Instructor,
		Credits:    req.Credits,
		Semester:   req.Semester,
		Department: req.Department,
		Year:       req.Year,
		CreatedAt:  time.Now().UTC(),
	}

	r.mu.Lock()
	r.items[c.ID] = c
	r.mu.Unlock()

	return c, nil
}

func (r *CoursesRepo) Replace(ctx context.Context, id string, req course.UpsertCourseRequest) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]

	if !ok {
		return repo.ErrNotFound
	}

	r.items[id] = course.Course{
		ID:         id,
		Name:       req.Name,
		Code:       req.Code,
		Instructor: req.Instructor,
		Credits:    req.Credits,
		Semester:   req.Semester,
		Department: req.Department,
		Year:       req.Year,
		CreatedAt:  existing.CreatedAt,
	}

	return nil
}

func (r *CoursesRepo) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repo.ErrNotFound
	}

	delete(r.items, id)

	return nil
}
