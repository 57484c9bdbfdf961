package postgres

import (
	"context"
	"fmt"

	"github.com/campus-hub/enrollment-hub/internal/domain/student"

	"github.com/jackc/pgx/v5"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository for PostgreSQL.
type StudentRepository struct {
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{conn: conn}
}

// Save upserts a student by ID.
func (r *StudentRepository) Save(ctx context.Context, s *student.Student) error {
	query := `
		INSERT INTO students (id, name, email, current_credits, max_credits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			current_credits = EXCLUDED.current_credits,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.conn.Exec(ctx, query,
		s.ID,
		s.Name,
		string(s.Email),
		int(s.CurrentCredits),
		int(s.MaxCredits),
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save student: %w", err)
	}

	return nil
}

// GetByID returns a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*student.Student, error) {
	query := `
		SELECT id, name, email, current_credits, max_credits, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	row := r.conn.QueryRow(ctx, query, id)
	return r.scanStudent(row)
}

// GetAll returns all students. Order is not guaranteed.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*student.Student, error) {
	query := `
		SELECT id, name, email, current_credits, max_credits, created_at, updated_at
		FROM students
	`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := make([]*student.Student, 0)
	for rows.Next() {
		s, err := r.scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// Exists reports whether a student with the given ID is stored.
func (r *StudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`

	if err := r.conn.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check student existence: %w", err)
	}

	return exists, nil
}

// scanStudent scans one student row.
func (r *StudentRepository) scanStudent(row pgx.Row) (*student.Student, error) {
	var (
		s              student.Student
		email          string
		currentCredits int
		maxCredits     int
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&email,
		&currentCredits,
		&maxCredits,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, student.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}

	s.Email = student.Email(email)
	s.CurrentCredits = student.Credits(currentCredits)
	s.MaxCredits = student.Credits(maxCredits)

	return &s, nil
}
