package course

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции хранилища курсов.
type Repository interface {
	// Save сохраняет курс (upsert по ID).
	Save(ctx context.Context, course *Course) error

	// GetByID возвращает курс по ID.
	// Возвращает ErrCourseNotFound, если курс не найден.
	GetByID(ctx context.Context, id string) (*Course, error)

	// GetAll возвращает все курсы. Порядок не гарантируется.
	GetAll(ctx context.Context) ([]*Course, error)

	// Exists проверяет существование курса по ID.
	Exists(ctx context.Context, id string) (bool, error)
}
