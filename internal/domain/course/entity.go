// Package course содержит доменную модель курса Campus Enrollment Hub.
package course

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course - сущность курса. Неизменяема после создания:
// вес в кредитах и название фиксируются при добавлении в каталог.
type Course struct {
	// ID - уникальный идентификатор курса.
	ID string

	// Name - название курса.
	Name string

	// Credits - вес курса в кредитах (строго положительный).
	Credits int

	// CreatedAt - время добавления курса в каталог.
	CreatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - невалидное название курса.
	ErrInvalidName = errors.New("invalid course name: must be 1-200 chars")

	// ErrInvalidCredits - невалидный вес курса.
	ErrInvalidCredits = errors.New("invalid course credits: must be positive")

	// ErrCourseNotFound - курс не найден.
	ErrCourseNotFound = errors.New("course not found")

	// ErrCourseAlreadyExists - курс уже существует.
	ErrCourseAlreadyExists = errors.New("course already exists")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewCourseParams содержит параметры для создания курса.
type NewCourseParams struct {
	ID      string
	Name    string
	Credits int
}

// NewCourse создаёт новый курс с валидацией всех полей.
func NewCourse(params NewCourseParams) (*Course, error) {
	if params.ID == "" {
		return nil, errors.New("course id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 200 {
		return nil, ErrInvalidName
	}

	if params.Credits <= 0 {
		return nil, ErrInvalidCredits
	}

	return &Course{
		ID:        params.ID,
		Name:      name,
		Credits:   params.Credits,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// String возвращает строковое представление курса для логирования.
func (c *Course) String() string {
	return fmt.Sprintf("Course{ID: %s, Name: %s, Credits: %d}", c.ID, c.Name, c.Credits)
}

// Clone создаёт копию курса.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}

	clone := *c
	return &clone
}
