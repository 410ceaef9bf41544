package usecase

import (
	"context"

	repo "smartstudy/internal/auth/repository"
	"smartstudy/internal/model"
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

// mockUserRepo is a function-field mock of repository.Repository.
type mockUserRepo struct {
	createFunc func(opt repo.CreateUserOptions) (model.User, error)
	getFunc    func(opt repo.GetOneUserOptions) (model.User, error)
	updateFunc func(opt repo.UpdateUserOptions) (model.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	if m.createFunc == nil {
		return model.User{}, nil
	}
	return m.createFunc(opt)
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getFunc == nil {
		return model.User{}, nil
	}
	return m.getFunc(opt)
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	if m.updateFunc == nil {
		return model.User{}, nil
	}
	return m.updateFunc(opt)
}
