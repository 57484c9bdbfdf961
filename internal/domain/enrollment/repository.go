package enrollment

import (
	"context"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Хранилище записей о зачислении - append-only список. Уникальность
// пары (студент, курс) не контролируется: повторное зачисление
// допустимо и учитывается в кредитном лимите.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции хранилища зачислений.
type Repository interface {
	// Save добавляет запись о зачислении (append) либо обновляет
	// существующую запись по ID (для выставления оценки).
	Save(ctx context.Context, enrollment *Enrollment) error

	// GetByStudentID возвращает все зачисления студента
	// в порядке добавления.
	GetByStudentID(ctx context.Context, studentID string) ([]*Enrollment, error)

	// GetByStudentAndCourse возвращает первую запись для пары
	// (студент, курс). Возвращает ErrEnrollmentNotFound, если записи нет.
	GetByStudentAndCourse(ctx context.Context, studentID, courseID string) (*Enrollment, error)
}

// ══════════════════════════════════════════════════════════════════════════════
// GPA CACHE INTERFACE
// Кеширование вычисленного GPA (обычно реализуется через Redis).
// ══════════════════════════════════════════════════════════════════════════════

// GPACache определяет операции кеширования GPA студентов.
type GPACache interface {
	// GetGPA получает закешированный GPA студента.
	// Возвращает ошибку при промахе кеша.
	GetGPA(ctx context.Context, studentID string) (float64, error)

	// SetGPA сохраняет GPA студента в кеш.
	SetGPA(ctx context.Context, studentID string, gpa float64, ttl time.Duration) error

	// Invalidate инвалидирует закешированный GPA студента.
	Invalidate(ctx context.Context, studentID string) error
}
