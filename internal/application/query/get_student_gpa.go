// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"
	"time"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"
	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STUDENT GPA QUERY
// Вычисляет средневзвешенный по кредитам GPA студента.
// GPA = sum(оценка * кредиты) / sum(кредиты) по всем зачислениям,
// для которых найден курс.
// ══════════════════════════════════════════════════════════════════════════════

// GetStudentGPAQuery содержит параметры запроса GPA.
type GetStudentGPAQuery struct {
	// StudentID - идентификатор студента.
	StudentID string

	// SkipCache - не читать закешированное значение.
	SkipCache bool
}

// Validate проверяет корректность параметров запроса.
func (q GetStudentGPAQuery) Validate() error {
	if q.StudentID == "" {
		return errors.New("get_student_gpa: student_id is required")
	}
	return nil
}

// StudentGPADTO - результат вычисления GPA.
type StudentGPADTO struct {
	// StudentID - идентификатор студента.
	StudentID string `json:"student_id"`

	// GPA - средневзвешенный балл. 0.0 при отсутствии зачислений.
	GPA float64 `json:"gpa"`

	// TotalCredits - сумма кредитов, вошедших в знаменатель.
	TotalCredits int `json:"total_credits"`

	// Enrollments - количество зачислений, учтённых в расчёте.
	Enrollments int `json:"enrollments"`

	// SkippedOrphans - количество зачислений, пропущенных из-за
	// отсутствующего курса.
	SkippedOrphans int `json:"skipped_orphans"`

	// FromCache - значение получено из кеша.
	FromCache bool `json:"from_cache"`
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// GetStudentGPAHandler обрабатывает GetStudentGPAQuery.
type GetStudentGPAHandler struct {
	studentRepo    student.Repository
	courseRepo     course.Repository
	enrollmentRepo enrollment.Repository
	gpaCache       enrollment.GPACache
	cacheTTL       time.Duration
}

// DefaultGPACacheTTL - время жизни закешированного GPA по умолчанию.
const DefaultGPACacheTTL = 5 * time.Minute

// NewGetStudentGPAHandler создаёт новый GetStudentGPAHandler.
// gpaCache опционален и может быть nil.
func NewGetStudentGPAHandler(
	studentRepo student.Repository,
	courseRepo course.Repository,
	enrollmentRepo enrollment.Repository,
	gpaCache enrollment.GPACache,
) *GetStudentGPAHandler {
	return &GetStudentGPAHandler{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		gpaCache:       gpaCache,
		cacheTTL:       DefaultGPACacheTTL,
	}
}

// WithCacheTTL переопределяет время жизни закешированного GPA.
func (h *GetStudentGPAHandler) WithCacheTTL(ttl time.Duration) *GetStudentGPAHandler {
	if ttl > 0 {
		h.cacheTTL = ttl
	}
	return h
}

// Handle вычисляет GPA студента.
//
// Зачисления, для которых курс не найден, молча пропускаются -
// они не попадают ни в числитель, ни в знаменатель. Это осознанная
// терпимость к осиротевшим записям, а не ошибка.
func (h *GetStudentGPAHandler) Handle(ctx context.Context, q GetStudentGPAQuery) (*StudentGPADTO, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("enrollment", "CalculateGPA", shared.ErrInvalidInput, "validation failed", err)
	}

	// Студент должен существовать.
	stud, err := h.studentRepo.GetByID(ctx, q.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			return nil, shared.StudentNotFound("CalculateGPA", q.StudentID)
		}
		return nil, shared.WrapError("student", "CalculateGPA", nil, "failed to get student", err)
	}

	// Кеш - только быстрый путь; промах просто ведёт к пересчёту.
	if h.gpaCache != nil && !q.SkipCache {
		if gpa, cacheErr := h.gpaCache.GetGPA(ctx, stud.ID); cacheErr == nil {
			return &StudentGPADTO{
				StudentID: stud.ID,
				GPA:       gpa,
				FromCache: true,
			}, nil
		}
	}

	enrollments, err := h.enrollmentRepo.GetByStudentID(ctx, stud.ID)
	if err != nil {
		return nil, shared.WrapError("enrollment", "CalculateGPA", nil, "failed to get enrollments", err)
	}

	dto := &StudentGPADTO{StudentID: stud.ID}

	totalPoints := 0.0
	totalCredits := 0

	for _, enr := range enrollments {
		crs, err := h.courseRepo.GetByID(ctx, enr.CourseID)
		if err != nil {
			if errors.Is(err, course.ErrCourseNotFound) {
				dto.SkippedOrphans++
				continue
			}
			return nil, shared.WrapError("course", "CalculateGPA", nil, "failed to get course", err)
		}

		totalPoints += enr.Grade * float64(crs.Credits)
		totalCredits += crs.Credits
		dto.Enrollments++
	}

	if totalCredits > 0 {
		dto.GPA = totalPoints / float64(totalCredits)
	}
	dto.TotalCredits = totalCredits

	if h.gpaCache != nil {
		_ = h.gpaCache.SetGPA(ctx, stud.ID, dto.GPA, h.cacheTTL)
	}

	return dto, nil
}
