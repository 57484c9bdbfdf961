// Package student содержит доменную модель студента Campus Enrollment Hub.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package student

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Credits представляет количество кредитов (зачётных единиц).
type Credits int

// IsValid проверяет, что количество кредитов неотрицательное.
func (c Credits) IsValid() bool {
	return c >= 0
}

// Add складывает кредиты.
func (c Credits) Add(delta Credits) Credits {
	return c + delta
}

// Email представляет контактный email студента.
type Email string

// IsValid проверяет минимальную корректность email.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\n\r")
}

// String возвращает строковое представление email.
func (e Email) String() string {
	return string(e)
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - центральная сущность системы, представляющая студента.
type Student struct {
	// ID - внутренний уникальный идентификатор (UUID в строковом формате).
	ID string

	// Name - отображаемое имя студента.
	Name string

	// Email - контактный email.
	Email Email

	// CurrentCredits - текущая сумма кредитов по зачисленным курсам.
	// Начинается с нуля; изменяется только движком зачисления.
	CurrentCredits Credits

	// MaxCredits - максимально допустимая сумма кредитов.
	// Неизменяема после создания студента.
	MaxCredits Credits

	// CreatedAt - время создания записи.
	CreatedAt time.Time

	// UpdatedAt - время последнего обновления.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - невалидное имя студента.
	ErrInvalidName = errors.New("invalid student name: must be 1-100 chars")

	// ErrInvalidEmail - невалидный email.
	ErrInvalidEmail = errors.New("invalid student email")

	// ErrInvalidMaxCredits - невалидный лимит кредитов.
	ErrInvalidMaxCredits = errors.New("invalid max credits: must be positive")

	// ErrInvalidCredits - невалидное значение кредитов.
	ErrInvalidCredits = errors.New("invalid credits: must be non-negative")

	// ErrStudentNotFound - студент не найден.
	ErrStudentNotFound = errors.New("student not found")

	// ErrStudentAlreadyExists - студент уже существует.
	ErrStudentAlreadyExists = errors.New("student already exists")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams содержит параметры для создания нового студента.
type NewStudentParams struct {
	ID         string
	Name       string
	Email      Email
	MaxCredits Credits
}

// NewStudent создаёт нового студента с валидацией всех полей.
// CurrentCredits всегда начинается с нуля.
func NewStudent(params NewStudentParams) (*Student, error) {
	if params.ID == "" {
		return nil, errors.New("student id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidName
	}

	if !params.Email.IsValid() {
		return nil, ErrInvalidEmail
	}

	if params.MaxCredits <= 0 {
		return nil, ErrInvalidMaxCredits
	}

	now := time.Now().UTC()

	return &Student{
		ID:             params.ID,
		Name:           name,
		Email:          params.Email,
		CurrentCredits: 0,
		MaxCredits:     params.MaxCredits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Business Logic)
// ══════════════════════════════════════════════════════════════════════════════

// AddCredits увеличивает текущую сумму кредитов при зачислении на курс.
// Инвариант CurrentCredits <= MaxCredits проверяет движок зачисления,
// а не сама сущность (см. application/command).
func (s *Student) AddCredits(delta Credits) error {
	if !delta.IsValid() {
		return ErrInvalidCredits
	}

	s.CurrentCredits = s.CurrentCredits.Add(delta)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// RemainingCredits возвращает количество кредитов до лимита.
func (s *Student) RemainingCredits() Credits {
	return s.MaxCredits - s.CurrentCredits
}

// CanTake проверяет, помещается ли курс с указанным весом в лимит.
// Равенство лимиту разрешено: добрать ровно до MaxCredits - допустимо.
func (s *Student) CanTake(credits Credits) bool {
	return s.CurrentCredits.Add(credits) <= s.MaxCredits
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf(
		"Student{ID: %s, Name: %s, Credits: %d/%d}",
		s.ID, s.Name, s.CurrentCredits, s.MaxCredits,
	)
}

// Clone создаёт глубокую копию студента.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}

	clone := *s
	return &clone
}
