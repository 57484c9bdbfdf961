package memory

import (
	"context"
	"sync"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"
)

// CourseRepository implements course.Repository with a keyed map.
type CourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*course.Course
}

// NewCourseRepository creates an empty CourseRepository.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[string]*course.Course),
	}
}

// Save upserts a course by ID.
func (r *CourseRepository) Save(_ context.Context, c *course.Course) error {
	if c == nil {
		return course.ErrCourseNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.courses[c.ID] = c.Clone()
	return nil
}

// GetByID returns a copy of the course with the given ID.
// Returns course.ErrCourseNotFound when absent.
func (r *CourseRepository) GetByID(_ context.Context, id string) (*course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.courses[id]
	if !ok {
		return nil, course.ErrCourseNotFound
	}
	return c.Clone(), nil
}

// GetAll returns copies of all courses. Order is not guaranteed.
func (r *CourseRepository) GetAll(_ context.Context) ([]*course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*course.Course, 0, len(r.courses))
	for _, c := range r.courses {
		all = append(all, c.Clone())
	}
	return all, nil
}

// Exists reports whether a course with the given ID is stored.
func (r *CourseRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.courses[id]
	return ok, nil
}

// Delete removes a course from the catalog. Enrollment records referencing
// the course are left in place; GPA calculation tolerates such orphans.
func (r *CourseRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return course.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}
