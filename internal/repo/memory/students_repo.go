package memory

import (
	"context"
	"sync"
	"time"

	"github.com/geocoder89/campushub/internal/domain/student"
	"github.com/geocoder89/campushub/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudentsRepo struct {
	mu    sync.RWMutex
	items map[string]student.Student
}

func NewStudentsRepo() *StudentsRepo {
	return &StudentsRepo{
		items: make(map[string]student.Student),
	}
}

func (r *StudentsRepo) List(ctx context.Context) ([]student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]student.Student, 0, len(r.items))

	for _, s := range r.items {
		out = append(out, s)
	}

	return out, nil
}

func (r *StudentsRepo) GetByID(ctx context.Context, id string) (student.Student, error) {
	// same id rules as the mongo repo
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return student.Student{}, repo.ErrInvalidID
	}

	r.mu.RLock()
	s, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return student.Student{}, repo.ErrNotFound
	}

	return s, nil
}

func (r *StudentsRepo) Create(ctx context.Context, req student.UpsertStudentRequest) (student.Student, error) {
	s := student.Student{
		ID:                 primitive.NewObjectID().Hex(),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Course:             req.Course,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		CreatedAt:          time.Now().UTC(),
	}

	r.mu.Lock()
	r.items[s.ID] = s
	r.mu.Unlock()

	return s, nil
}

func (r *StudentsRepo) Replace(ctx context.Context, id string, req student.UpsertStudentRequest) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repo.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]

	if !ok {
		return repo.ErrNotFound
	}

	r.items[id] = student.Student{
		ID:                 id,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Course:             req.Course,
		Year:               req.Year,
		RegistrationNumber: req.RegistrationNumber,
		CreatedAt:          existing.CreatedAt,
	}

	return nil
}

func (r *StudentsRepo) Delete(ctx context.Context, id string) error {
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
