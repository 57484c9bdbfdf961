// Package enrollment содержит доменную модель зачисления -
// записи, связывающей студента с курсом и несущей оценку.
package enrollment

import (
	"errors"
	"fmt"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// GRADE BOUNDS
// ══════════════════════════════════════════════════════════════════════════════

const (
	// MinGrade - минимально допустимая оценка.
	MinGrade = 0.0

	// MaxGrade - максимально допустимая оценка (шкала 4.0).
	MaxGrade = 4.0
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: ENROLLMENT
// ══════════════════════════════════════════════════════════════════════════════

// Enrollment - запись о зачислении студента на курс.
// Создаётся только движком зачисления; оценка выставляется позже;
// записи никогда не удаляются.
type Enrollment struct {
	// ID - внутренний уникальный идентификатор записи (UUID).
	ID string

	// StudentID - идентификатор студента.
	StudentID string

	// CourseID - идентификатор курса.
	CourseID string

	// Grade - оценка за курс. По умолчанию 0.0, пока не выставлена.
	Grade float64

	// EnrolledAt - время зачисления.
	EnrolledAt time.Time

	// GradedAt - время выставления оценки (нулевое, если оценки нет).
	GradedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidGrade - оценка вне допустимого диапазона.
	ErrInvalidGrade = errors.New("invalid grade: must be between 0.0 and 4.0")

	// ErrEnrollmentNotFound - запись о зачислении не найдена.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY
// ══════════════════════════════════════════════════════════════════════════════

// NewEnrollment создаёт новую запись о зачислении с оценкой 0.0.
func NewEnrollment(id, studentID, courseID string) (*Enrollment, error) {
	if id == "" {
		return nil, errors.New("enrollment id is required")
	}
	if studentID == "" {
		return nil, errors.New("student id is required")
	}
	if courseID == "" {
		return nil, errors.New("course id is required")
	}

	return &Enrollment{
		ID:         id,
		StudentID:  studentID,
		CourseID:   courseID,
		Grade:      0.0,
		EnrolledAt: time.Now().UTC(),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// AssignGrade выставляет оценку за курс.
func (e *Enrollment) AssignGrade(grade float64) error {
	if grade < MinGrade || grade > MaxGrade {
		return ErrInvalidGrade
	}

	e.Grade = grade
	e.GradedAt = time.Now().UTC()
	return nil
}

// IsGraded возвращает true, если оценка уже выставлена.
func (e *Enrollment) IsGraded() bool {
	return !e.GradedAt.IsZero()
}

// String возвращает строковое представление записи для логирования.
func (e *Enrollment) String() string {
	return fmt.Sprintf(
		"Enrollment{Student: %s, Course: %s, Grade: %.2f}",
		e.StudentID, e.CourseID, e.Grade,
	)
}

// Clone создаёт копию записи.
func (e *Enrollment) Clone() *Enrollment {
	if e == nil {
		return nil
	}

	clone := *e
	return &clone
}
