package session_test

import (
	"testing"
	"time"

	"workorder/internal/core/application/session"
	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	session   *session.EditSession
	orderID   kernel.UUID
	entryRepo *MockEntryRepository
}

// openTestSession builds a session over mocked persistence and opens a work
// order with the given stored rows.
func openTestSession(
	t *testing.T,
	timeEntries []ledger.TimeEntry,
	materialEntries []ledger.MaterialEntry,
) sessionFixture {
	t.Helper()

	orderID := kernel.NewUUID()
	order, err := workorder.NewWorkOrder(
		orderID, "WO-1", "Brake overhaul", "SJ AB", workorder.Details{}, time.Now().UTC())
	require.NoError(t, err)

	woRepo := new(MockWorkOrderRepository)
	woRepo.On("Get", mock.Anything, orderID).Return(order, nil)

	entryRepo := new(MockEntryRepository)
	entryRepo.On("GetTimeEntries", mock.Anything, orderID).Return(timeEntries, nil)
	entryRepo.On("GetMaterialEntries", mock.Anything, orderID).Return(materialEntries, nil)

	uow := new(MockUnitOfWork)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("WorkOrderRepository").Return(woRepo)
	uow.On("EntryRepository").Return(entryRepo)

	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow)

	s, err := session.NewEditSession(factory)
	require.NoError(t, err)
	require.NoError(t, s.Open(t.Context(), orderID))

	return sessionFixture{session: s, orderID: orderID, entryRepo: entryRepo}
}

func TestEditSession_Open(t *testing.T) {
	t.Run("should load the order and its rows", func(t *testing.T) {
		f := openTestSession(t,
			[]ledger.TimeEntry{ledger.RestoreTimeEntry("REP", "Repair", 3.5, 850)},
			[]ledger.MaterialEntry{ledger.RestoreMaterialEntry("EM1", "Brake pad", 2, "st", 100)},
		)

		require.NotNil(t, f.session.Order())
		assert.True(t, f.session.Order().ID().IsEqual(f.orderID))
		assert.Len(t, f.session.TimeEntries(), 1)
		assert.Len(t, f.session.MaterialEntries(), 1)
		assert.InDelta(t, 2975.0, f.session.TimeTotal(), 1e-9)
		assert.InDelta(t, 200.0, f.session.MaterialTotal(), 1e-9)
	})
}

func TestEditSession_Edits(t *testing.T) {
	t.Run("should keep totals in step with edits", func(t *testing.T) {
		f := openTestSession(t, nil, nil)

		f.session.AppendTime("REP", "Repair", "2", "850")
		f.session.AppendMaterial("EM1", "Brake pad", "2", "st", "100")
		f.session.AppendMaterial("EM2", "Bolt", "3", "st", "50")
		f.session.UpdateTimeField(0, ledger.TimeFieldHours, "3,5")
		f.session.RemoveMaterialAt(0)

		assert.InDelta(t, 2975.0, f.session.TimeTotal(), 1e-9)
		assert.InDelta(t, 150.0, f.session.MaterialTotal(), 1e-9)
	})

	t.Run("should ignore edits to rows that no longer exist", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendTime("REP", "Repair", "2", "850")

		f.session.UpdateTimeField(5, ledger.TimeFieldHours, "99")
		f.session.RemoveTimeAt(3)

		assert.Len(t, f.session.TimeEntries(), 1)
		assert.InDelta(t, 1700.0, f.session.TimeTotal(), 1e-9)
	})

	t.Run("should ignore edits after close", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendTime("REP", "Repair", "2", "850")

		f.session.Close()
		f.session.AppendTime("REP", "More", "1", "850")
		f.session.RemoveTimeAt(0)

		assert.Len(t, f.session.TimeEntries(), 1)
	})

	t.Run("should apply a picked suggestion to the row", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("em 1", "", "4", "", "")

		entry, err := pricelist.NewEntry("EM 1", "Brake pad", 129.50, "pcs")
		require.NoError(t, err)
		f.session.ApplySuggestion(0, entry)

		rows := f.session.MaterialEntries()
		require.Len(t, rows, 1)
		assert.Equal(t, "Brake pad", rows[0].Description())
		assert.Equal(t, "pcs", rows[0].Unit())
		assert.InDelta(t, 518.0, f.session.MaterialTotal(), 1e-9)
	})
}

func TestEditSession_Save(t *testing.T) {
	t.Run("should replace both stored ledgers in one transaction", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendTime("REP", "Repair", "2", "850")
		f.session.AppendMaterial("EM1", "Brake pad", "2", "st", "100")

		f.entryRepo.On("ReplaceTimeEntries", mock.Anything, f.orderID,
			mock.MatchedBy(func(entries []ledger.TimeEntry) bool {
				return len(entries) == 1 && entries[0].Total() == 1700.0
			})).Return(nil).Once()
		f.entryRepo.On("ReplaceMaterialEntries", mock.Anything, f.orderID,
			mock.MatchedBy(func(entries []ledger.MaterialEntry) bool {
				return len(entries) == 1 && entries[0].Total() == 200.0
			})).Return(nil).Once()

		require.NoError(t, f.session.Save(t.Context()))
		f.entryRepo.AssertExpectations(t)
	})

	t.Run("should fail when nothing is open", func(t *testing.T) {
		factory := new(MockUnitOfWorkFactory)
		s, err := session.NewEditSession(factory)
		require.NoError(t, err)

		err = s.Save(t.Context())

		require.ErrorIs(t, err, session.ErrSessionIsNotOpen)
	})
}
