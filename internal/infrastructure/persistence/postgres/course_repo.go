package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"

	"github.com/jackc/pgx/v5"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// CourseRepository implements course.Repository for PostgreSQL.
type CourseRepository struct {
	conn *Connection
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(conn *Connection) *CourseRepository {
	return &CourseRepository{conn: conn}
}

// Save upserts a course by ID.
func (r *CourseRepository) Save(ctx context.Context, c *course.Course) error {
	query := `
		INSERT INTO courses (id, name, credits, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			credits = EXCLUDED.credits
	`

	_, err := r.conn.Exec(ctx, query, c.ID, c.Name, c.Credits, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}

	return nil
}

// GetByID returns a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*course.Course, error) {
	query := `
		SELECT id, name, credits, created_at
		FROM courses
		WHERE id = $1
	`

	row := r.conn.QueryRow(ctx, query, id)
	return r.scanCourse(row)
}

// GetAll returns all courses. Order is not guaranteed.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*course.Course, error) {
	query := `
		SELECT id, name, credits, created_at
		FROM courses
	`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*course.Course, 0)
	for rows.Next() {
		c, err := r.scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, rows.Err()
}

// Exists reports whether a course with the given ID is stored.
func (r *CourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`

	if err := r.conn.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check course existence: %w", err)
	}

	return exists, nil
}

// scanCourse scans one course row.
func (r *CourseRepository) scanCourse(row pgx.Row) (*course.Course, error) {
	var c course.Course

	err := row.Scan(&c.ID, &c.Name, &c.Credits, &c.CreatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to scan course: %w", err)
	}

	return &c, nil
}
