package student

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Этот интерфейс определяет контракт для работы с хранилищем студентов.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции хранилища студентов.
type Repository interface {
	// Save сохраняет студента (upsert по ID).
	Save(ctx context.Context, student *Student) error

	// GetByID возвращает студента по ID.
	// Возвращает ErrStudentNotFound, если студент не найден.
	GetByID(ctx context.Context, id string) (*Student, error)

	// GetAll возвращает всех студентов. Порядок не гарантируется.
	GetAll(ctx context.Context) ([]*Student, error)

	// Exists проверяет существование студента по ID.
	Exists(ctx context.Context, id string) (bool, error)
}
