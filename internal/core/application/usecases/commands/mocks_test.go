package commands_test

import (
	"context"
	"time"

	"valueguard/internal/core/application/usecases/commands"
	"valueguard/internal/core/domain/model/holder"
	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockHolderRepository struct{ mock.Mock }

func (m *MockHolderRepository) Add(ctx context.Context, h *holder.Holder) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHolderRepository) Get(ctx context.Context, id kernel.UUID) (*holder.Holder, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*holder.Holder)
	return h, args.Error(1)
}

func (m *MockHolderRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockHolderUoW struct{ mock.Mock }

func (m *MockHolderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHolderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHolderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHolderUoW) HolderRepository() ports.HolderRepository {
	args := m.Called()
	return args.Get(0).(ports.HolderRepository)
}

type MockHolderUoWFactory struct{ mock.Mock }

func (m *MockHolderUoWFactory) Create() commands.HolderUoW {
	args := m.Called()
	return args.Get(0).(commands.HolderUoW)
}

type MockCleanupRegistry struct{ mock.Mock }

func (m *MockCleanupRegistry) Register(h *holder.Holder) error {
	args := m.Called(h)
	return args.Error(0)
}
