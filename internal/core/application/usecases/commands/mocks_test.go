package commands_test

import (
	"context"
	"errors"

	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workorder.WorkOrder), args.Error(1)
}

type MockEntryRepository struct{ mock.Mock }

func (m *MockEntryRepository) ReplaceTimeEntries(
	ctx context.Context, orderID kernel.UUID, entries []ledger.TimeEntry,
) error {
	args := m.Called(ctx, orderID, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) ReplaceMaterialEntries(
	ctx context.Context, orderID kernel.UUID, entries []ledger.MaterialEntry,
) error {
	args := m.Called(ctx, orderID, entries)
	return args.Error(0)
}

func (m *MockEntryRepository) GetTimeEntries(_ context.Context, _ kernel.UUID) ([]ledger.TimeEntry, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockEntryRepository) GetMaterialEntries(_ context.Context, _ kernel.UUID) ([]ledger.MaterialEntry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUoW) EntryRepository() ports.EntryRepository {
	args := m.Called()
	return args.Get(0).(ports.EntryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
