package session_test

import (
	"context"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/pricelist"
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

func (m *MockEntryRepository) GetTimeEntries(
	ctx context.Context, orderID kernel.UUID,
) ([]ledger.TimeEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.TimeEntry), args.Error(1)
}

func (m *MockEntryRepository) GetMaterialEntries(
	ctx context.Context, orderID kernel.UUID,
) ([]ledger.MaterialEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.MaterialEntry), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockUnitOfWork) EntryRepository() ports.EntryRepository {
	args := m.Called()
	return args.Get(0).(ports.EntryRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

// stubCatalog lets lookup tests control when and how searches resolve.
type stubCatalog struct {
	lookup func(ctx context.Context, key string) (pricelist.Entry, error)
	search func(ctx context.Context, prefix string) ([]pricelist.Entry, error)
}

func (s *stubCatalog) Lookup(ctx context.Context, key string) (pricelist.Entry, error) {
	if s.lookup == nil {
		return pricelist.Entry{}, nil
	}
	return s.lookup(ctx, key)
}

func (s *stubCatalog) Search(ctx context.Context, prefix string) ([]pricelist.Entry, error) {
	if s.search == nil {
		return nil, nil
	}
	return s.search(ctx, prefix)
}
