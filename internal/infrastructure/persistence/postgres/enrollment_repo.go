package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"

	"github.com/jackc/pgx/v5"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLLMENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// EnrollmentRepository implements enrollment.Repository for PostgreSQL.
type EnrollmentRepository struct {
	conn *Connection
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(conn *Connection) *EnrollmentRepository {
	return &EnrollmentRepository{conn: conn}
}

// Save appends a new enrollment, or updates the grade of an existing one.
func (r *EnrollmentRepository) Save(ctx context.Context, e *enrollment.Enrollment) error {
	query := `
		INSERT INTO enrollments (id, student_id, course_id, grade, enrolled_at, graded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			grade = EXCLUDED.grade,
			graded_at = EXCLUDED.graded_at
	`

	var gradedAt *time.Time
	if !e.GradedAt.IsZero() {
		gradedAt = &e.GradedAt
	}

	_, err := r.conn.Exec(ctx, query, e.ID, e.StudentID, e.CourseID, e.Grade, e.EnrolledAt, gradedAt)
	if err != nil {
		return fmt.Errorf("failed to save enrollment: %w", err)
	}

	return nil
}

// GetByStudentID returns the student's enrollments in insertion order.
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID string) ([]*enrollment.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, grade, enrolled_at, graded_at
		FROM enrollments
		WHERE student_id = $1
		ORDER BY enrolled_at, id
	`

	rows, err := r.conn.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := make([]*enrollment.Enrollment, 0)
	for rows.Next() {
		e, err := r.scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}

	return enrollments, rows.Err()
}

// GetByStudentAndCourse returns the first enrollment matching the pair.
func (r *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID string) (*enrollment.Enrollment, error) {
	query := `
		SELECT id, student_id, course_id, grade, enrolled_at, graded_at
		FROM enrollments
		WHERE student_id = $1 AND course_id = $2
		ORDER BY enrolled_at, id
		LIMIT 1
	`

	row := r.conn.QueryRow(ctx, query, studentID, courseID)
	return r.scanEnrollment(row)
}

// scanEnrollment scans one enrollment row.
func (r *EnrollmentRepository) scanEnrollment(row pgx.Row) (*enrollment.Enrollment, error) {
	var (
		e        enrollment.Enrollment
		gradedAt sql.NullTime
	)

	err := row.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Grade, &e.EnrolledAt, &gradedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, enrollment.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to scan enrollment: %w", err)
	}

	if gradedAt.Valid {
		e.GradedAt = gradedAt.Time
	}

	return &e, nil
}
