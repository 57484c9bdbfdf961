// Package memory implements in-memory persistence for Campus Enrollment Hub.
// These are the stores of record for single-process deployments and tests;
// all access is mutex-guarded and entities are copied on the way in and out,
// so callers never share memory with the store.
package memory

import (
	"context"
	"sync"

	"github.com/campus-hub/enrollment-hub/internal/domain/student"
)

// StudentRepository implements student.Repository with a keyed map.
type StudentRepository struct {
	mu       sync.RWMutex
	students map[string]*student.Student
}

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make(map[string]*student.Student),
	}
}

// Save upserts a student by ID.
func (r *StudentRepository) Save(_ context.Context, s *student.Student) error {
	if s == nil {
		return student.ErrStudentNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.students[s.ID] = s.Clone()
	return nil
}

// GetByID returns a copy of the student with the given ID.
// Returns student.ErrStudentNotFound when absent.
func (r *StudentRepository) GetByID(_ context.Context, id string) (*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	if !ok {
		return nil, student.ErrStudentNotFound
	}
	return s.Clone(), nil
}

// GetAll returns copies of all students. Order is not guaranteed.
func (r *StudentRepository) GetAll(_ context.Context) ([]*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*student.Student, 0, len(r.students))
	for _, s := range r.students {
		all = append(all, s.Clone())
	}
	return all, nil
}

// Exists reports whether a student with the given ID is stored.
func (r *StudentRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.students[id]
	return ok, nil
}
