package query

import (
	"context"
	"errors"

	"github.com/campus-hub/enrollment-hub/internal/domain/course"
	"github.com/campus-hub/enrollment-hub/internal/domain/enrollment"
	"github.com/campus-hub/enrollment-hub/internal/domain/shared"
	"github.com/campus-hub/enrollment-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TRANSCRIPT QUERY
// Возвращает все зачисления студента вместе с данными курсов.
// Осиротевшие записи (курс удалён из каталога) пропускаются так же,
// как при расчёте GPA.
// ══════════════════════════════════════════════════════════════════════════════

// GetTranscriptQuery содержит параметры запроса транскрипта.
type GetTranscriptQuery struct {
	// StudentID - идентификатор студента.
	StudentID string
}

// TranscriptRowDTO - одна строка транскрипта.
type TranscriptRowDTO struct {
	// CourseID - идентификатор курса.
	CourseID string `json:"course_id"`

	// CourseName - название курса.
	CourseName string `json:"course_name"`

	// Credits - вес курса в кредитах.
	Credits int `json:"credits"`

	// Grade - оценка (0.0, если не выставлена).
	Grade float64 `json:"grade"`

	// Graded - оценка выставлена.
	Graded bool `json:"graded"`

	// GradePoints - вклад строки в числитель GPA (grade * credits).
	GradePoints float64 `json:"grade_points"`
}

// TranscriptDTO - транскрипт студента.
type TranscriptDTO struct {
	// StudentID - идентификатор студента.
	StudentID string `json:"student_id"`

	// StudentName - имя студента.
	StudentName string `json:"student_name"`

	// CurrentCredits - текущая сумма кредитов.
	CurrentCredits int `json:"current_credits"`

	// MaxCredits - лимит кредитов.
	MaxCredits int `json:"max_credits"`

	// Rows - строки транскрипта в порядке зачисления.
	Rows []TranscriptRowDTO `json:"rows"`
}

// GetTranscriptHandler обрабатывает GetTranscriptQuery.
type GetTranscriptHandler struct {
	studentRepo    student.Repository
	courseRepo     course.Repository
	enrollmentRepo enrollment.Repository
}

// NewGetTranscriptHandler создаёт новый GetTranscriptHandler.
func NewGetTranscriptHandler(
	studentRepo student.Repository,
	courseRepo course.Repository,
	enrollmentRepo enrollment.Repository,
) *GetTranscriptHandler {
	return &GetTranscriptHandler{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Handle собирает транскрипт студента.
func (h *GetTranscriptHandler) Handle(ctx context.Context, q GetTranscriptQuery) (*TranscriptDTO, error) {
	if q.StudentID == "" {
		return nil, shared.NewDomainError("student", "GetTranscript", shared.ErrInvalidInput,
			"get_transcript: student_id is required")
	}

	stud, err := h.studentRepo.GetByID(ctx, q.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrStudentNotFound) {
			return nil, shared.StudentNotFound("GetTranscript", q.StudentID)
		}
		return nil, shared.WrapError("student", "GetTranscript", nil, "failed to get student", err)
	}

	enrollments, err := h.enrollmentRepo.GetByStudentID(ctx, stud.ID)
	if err != nil {
		return nil, shared.WrapError("enrollment", "GetTranscript", nil, "failed to get enrollments", err)
	}

	dto := &TranscriptDTO{
		StudentID:      stud.ID,
		StudentName:    stud.Name,
		CurrentCredits: int(stud.CurrentCredits),
		MaxCredits:     int(stud.MaxCredits),
		Rows:           make([]TranscriptRowDTO, 0, len(enrollments)),
	}

	for _, enr := range enrollments {
		crs, err := h.courseRepo.GetByID(ctx, enr.CourseID)
		if err != nil {
			if errors.Is(err, course.ErrCourseNotFound) {
				continue
			}
			return nil, shared.WrapError("course", "GetTranscript", nil, "failed to get course", err)
		}

		dto.Rows = append(dto.Rows, TranscriptRowDTO{
			CourseID:    crs.ID,
			CourseName:  crs.Name,
			Credits:     crs.Credits,
			Grade:       enr.Grade,
			Graded:      enr.IsGraded(),
			GradePoints: enr.Grade * float64(crs.Credits),
		})
	}

	return dto, nil
}
