package usecase

import (
	"context"

	"smartstudy/internal/model"
	"smartstudy/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository lets each test plug in just the methods it needs.
type mockRepository struct {
	createTaskFunc   func(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error)
	getOneTaskFunc   func(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error)
	listTasksFunc    func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error)
	updateTaskFunc   func(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error)
	deleteTaskFunc   func(ctx context.Context, id, userID string) error
	completeTaskFunc func(ctx context.Context, opt repository.CompleteTaskOptions) (model.Task, error)
	reopenTaskFunc   func(ctx context.Context, id, userID string) (model.Task, error)
	listEventsFunc   func(ctx context.Context, opt repository.ListEventsOptions) ([]model.CompletionEvent, error)
	userTimezoneFunc func(ctx context.Context, userID string) (string, error)
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return m.createTaskFunc(ctx, opt)
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	return m.getOneTaskFunc(ctx, opt)
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return m.listTasksFunc(ctx, opt)
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	return m.updateTaskFunc(ctx, opt)
}

func (m *mockRepository) DeleteTask(ctx context.Context, id, userID string) error {
	return m.deleteTaskFunc(ctx, id, userID)
}

func (m *mockRepository) CompleteTask(ctx context.Context, opt repository.CompleteTaskOptions) (model.Task, error) {
	return m.completeTaskFunc(ctx, opt)
}

func (m *mockRepository) ReopenTask(ctx context.Context, id, userID string) (model.Task, error) {
	return m.reopenTaskFunc(ctx, id, userID)
}

func (m *mockRepository) ListCompletionEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CompletionEvent, error) {
	return m.listEventsFunc(ctx, opt)
}

func (m *mockRepository) UserTimezone(ctx context.Context, userID string) (string, error) {
	if m.userTimezoneFunc == nil {
		return "UTC", nil
	}
	return m.userTimezoneFunc(ctx, userID)
}

// mockInvalidator records stats cache invalidations.
type mockInvalidator struct {
	invalidated []string
}

func (m *mockInvalidator) Invalidate(userID string) {
	m.invalidated = append(m.invalidated, userID)
}
