package memory

import (
	"context"
	"sync"

	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
)

// EnrollmentRepository implements enrollment.Repository with an
// append-only slice. Insertion order is preserved for GetByStudentID;
// uniqueness of the (student, course) pair is not enforced here.
type EnrollmentRepository struct {
	mu          sync.RWMutex
	enrollments []*enrollment.Enrollment
}

// NewEnrollmentRepository creates an empty EnrollmentRepository.
func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{
		enrollments: make([]*enrollment.Enrollment, 0),
	}
}

// Save appends a new enrollment, or updates the stored record in place
// when one with the same ID already exists (grade assignment).
func (r *EnrollmentRepository) Save(_ context.Context, e *enrollment.Enrollment) error {
	if e == nil {
		return enrollment.ErrEnrollmentNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.enrollments {
		if stored.ID == e.ID {
			r.enrollments[i] = e.Clone()
			return nil
		}
	}

	r.enrollments = append(r.enrollments, e.Clone())
	return nil
}

// GetByStudentID returns copies of the student's enrollments in
// insertion order.
func (r *EnrollmentRepository) GetByStudentID(_ context.Context, studentID string) ([]*enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*enrollment.Enrollment, 0)
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			result = append(result, e.Clone())
		}
	}
	return result, nil
}

// GetByStudentAndCourse returns a copy of the first enrollment matching
// the pair. Returns enrollment.ErrEnrollmentNotFound when absent.
func (r *EnrollmentRepository) GetByStudentAndCourse(_ context.Context, studentID, courseID string) (*enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e.Clone(), nil
		}
	}
	return nil, enrollment.ErrEnrollmentNotFound
}

// Count returns the total number of stored enrollments.
func (r *EnrollmentRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.enrollments), nil
}
