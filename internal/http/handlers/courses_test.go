package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/geocoder89/campushub/internal/cache"
	"github.com/geocoder89/campushub/internal/domain/course"
	"github.com/geocoder89/campushub/internal/http/handlers"
	"github.com/geocoder89/campushub/internal/repo"
	"github.com/gin-gonic/gin"
)

type fakeCoursesRepo struct {
	listFn    func(ctx context.Context) ([]course.Course, error)
	getFn     func(ctx context.Context, id string) (course.Course, error)
	createFn  func(ctx context.Context, req course.UpsertCourseRequest) (course.Course, error)
	replaceFn func(ctx context.Context, id string, req course.UpsertCourseRequest) error
	deleteFn  func(ctx context.Context, id string) error

	getCalls int
}

func (f *fakeCoursesRepo) List(ctx context.Context) ([]course.Course, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return []course.Course{}, nil
}

func (f *fakeCoursesRepo) GetByID(ctx context.Context, id string) (course.Course, error) {
	f.getCalls++

	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return course.Course{}, nil
}

func (f *fakeCoursesRepo) Create(ctx context.Context, req course.UpsertCourseRequest) (course.Course, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return course.Course{}, nil
}

func (f *fakeCoursesRepo) Replace(ctx context.Context, id string, req course.UpsertCourseRequest) error {
	if f.replaceFn != nil {
		return f.replaceFn(ctx, id, req)
	}
	return nil
}

func (f *fakeCoursesRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

const fullCourseBody = `{
	"name": "Distributed Systems",
	"code": "CS-677",
	"instructor": "L. Lamport",
	"credits": 4,
	"semester": "Fall",
	"department": "Computer Science",
	"year": 2026
}`

func TestCreateCourseHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "success",
			body:           fullCourseBody,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing_department",
			body:           `{"name":"DS","code":"CS-677","instructor":"L. Lamport","credits":4,"semester":"Fall","year":2026}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCoursesRepo{
				createFn: func(ctx context.Context, req course.UpsertCourseRequest) (course.Course, error) {
					return course.Course{ID: "64f1c0a2b3d4e5f60718293c", Name: req.Name}, nil
				},
			}

			h := handlers.NewCoursesHandler(fake, nil)
			r := setupRouter(http.MethodPost, "/courses", h.CreateCourse)

			w := doJSON(t, r, http.MethodPost, "/courses", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestGetCourseByIdHandler(t *testing.T) {
	fake := &fakeCoursesRepo{
		getFn: func(ctx context.Context, id string) (course.Course, error) {
			return course.Course{}, repo.ErrInvalidID
		},
	}

	h := handlers.NewCoursesHandler(fake, nil)
	r := setupRouter(http.MethodGet, "/courses/:id", h.GetCourseById)

	w := doJSON(t, r, http.MethodGet, "/courses/bogus", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400, body=%s", w.Code, w.Body.String())
	}
}

// The read cache should absorb repeat GETs and drop entries on writes.
func TestCourseCacheServesAndInvalidates(t *testing.T) {
	const id = "64f1c0a2b3d4e5f60718293c"

	fake := &fakeCoursesRepo{
		getFn: func(ctx context.Context, gotID string) (course.Course, error) {
			return course.Course{ID: gotID, Name: "Distributed Systems"}, nil
		},
	}

	c := cache.NewMemory(time.Minute)
	h := handlers.NewCoursesHandler(fake, c)

	r := gin.New()
	r.GET("/courses/:id", h.GetCourseById)
	r.DELETE("/courses/:id", h.DeleteCourse)

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodGet, "/courses/"+id, "")

		if w.Code != http.StatusOK {
			t.Fatalf("get %d: status %d body=%s", i, w.Code, w.Body.String())
		}
	}

	if fake.getCalls != 1 {
		t.Fatalf("repo hit %d times, want 1 (cache misses)", fake.getCalls)
	}

	if w := doJSON(t, r, http.MethodDelete, "/courses/"+id, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d body=%s", w.Code, w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, "/courses/"+id, ""); w.Code != http.StatusOK {
		t.Fatalf("get after delete: status %d", w.Code)
	}

	if fake.getCalls != 2 {
		t.Fatalf("repo hit %d times after invalidation, want 2", fake.getCalls)
	}
}
