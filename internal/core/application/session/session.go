package session

import (
	"context"
	"sync"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"
	"workorder/internal/pkg/errs"
)

// ErrSessionIsNotOpen is returned when an operation needs an open session.
var ErrSessionIsNotOpen = errs.NewValueIsRequiredError("open session")

// EditSession holds one work order and its two ledgers while the user edits
// them. All access is serialized on an internal mutex. An epoch counter
// identifies the loaded order: it moves only on Open and Close, so catalog
// results from a previous session are discarded while edits elsewhere in the
// grid never invalidate an in-flight lookup.
//
// Edits live only in the session until Save writes both ledgers back to the
// store in one transaction.
type EditSession struct {
	uowFactory ports.UnitOfWorkFactory

	mu       sync.Mutex
	epoch    uint64
	order    *workorder.WorkOrder
	time     *ledger.Ledger[ledger.TimeEntry, ledger.TimeField]
	material *ledger.Ledger[ledger.MaterialEntry, ledger.MaterialField]
	closed   bool
}

// NewEditSession creates a session that loads and saves through the given
// unit of work factory.
func NewEditSession(uowFactory ports.UnitOfWorkFactory) (*EditSession, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &EditSession{uowFactory: uowFactory}, nil
}

// Open loads a work order and its stored entries into the session,
// replacing whatever was loaded before. Pending state from the previous
// order is invalidated.
func (s *EditSession) Open(ctx context.Context, orderID kernel.UUID) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx) //nolint:errcheck

	order, err := uow.WorkOrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}
	timeEntries, err := uow.EntryRepository().GetTimeEntries(ctx, orderID)
	if err != nil {
		return err
	}
	materialEntries, err := uow.EntryRepository().GetMaterialEntries(ctx, orderID)
	if err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.order = order
	s.time = ledger.NewLedger[ledger.TimeEntry, ledger.TimeField]()
	s.time.ReplaceAll(timeEntries)
	s.material = ledger.NewLedger[ledger.MaterialEntry, ledger.MaterialField]()
	s.material.ReplaceAll(materialEntries)
	s.closed = false

	return nil
}

// Save writes both ledgers back to the store in one transaction. The
// session keeps editing state on failure, so the user can retry.
func (s *EditSession) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.order == nil || s.closed {
		s.mu.Unlock()
		return ErrSessionIsNotOpen
	}
	orderID := s.order.ID()
	timeEntries := s.time.Snapshot()
	materialEntries := s.material.Snapshot()
	s.mu.Unlock()

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx) //nolint:errcheck

	if err := uow.EntryRepository().ReplaceTimeEntries(ctx, orderID, timeEntries); err != nil {
		return err
	}
	if err := uow.EntryRepository().ReplaceMaterialEntries(ctx, orderID, materialEntries); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// Close ends the session. Pending catalog lookups started under it become
// stale and further edits are ignored.
func (s *EditSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.closed = true
}

// Order returns the loaded work order, or nil when nothing is open.
func (s *EditSession) Order() *workorder.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// AppendTime adds a time row from grid text.
func (s *EditSession) AppendTime(action, work, hours, rate string) {
	s.mutate(func() {
		s.time.Append(ledger.NewTimeEntry(action, work, hours, rate))
	})
}

// AppendMaterial adds a material row from grid text.
func (s *EditSession) AppendMaterial(articleKey, description, quantity, unit, price string) {
	s.mutate(func() {
		s.material.Append(ledger.NewMaterialEntry(articleKey, description, quantity, unit, price))
	})
}

// UpdateTimeField edits one field of a time row. Rows that no longer exist
// are ignored.
func (s *EditSession) UpdateTimeField(row int, field ledger.TimeField, raw string) {
	s.mutate(func() {
		s.time.UpdateField(row, field, raw)
	})
}

// UpdateMaterialField edits one field of a material row. Rows that no
// longer exist are ignored.
func (s *EditSession) UpdateMaterialField(row int, field ledger.MaterialField, raw string) {
	s.mutate(func() {
		s.material.UpdateField(row, field, raw)
	})
}

// RemoveTimeAt removes a time row. Rows that no longer exist are ignored.
func (s *EditSession) RemoveTimeAt(row int) {
	s.mutate(func() {
		s.time.RemoveAt(row)
	})
}

// RemoveMaterialAt removes a material row. Rows that no longer exist are
// ignored.
func (s *EditSession) RemoveMaterialAt(row int) {
	s.mutate(func() {
		s.material.RemoveAt(row)
	})
}

// ApplySuggestion fills a material row from a catalog entry the user picked
// explicitly, bypassing the staleness check of automatic lookups.
func (s *EditSession) ApplySuggestion(row int, entry pricelist.Entry) {
	s.mutate(func() {
		s.material.UpdateItem(row, func(e ledger.MaterialEntry) ledger.MaterialEntry {
			return e.WithCatalogEntry(entry)
		})
	})
}

// TimeEntries returns a copy of the time rows.
func (s *EditSession) TimeEntries() []ledger.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.time == nil {
		return nil
	}
	return s.time.Snapshot()
}

// MaterialEntries returns a copy of the material rows.
func (s *EditSession) MaterialEntries() []ledger.MaterialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.material == nil {
		return nil
	}
	return s.material.Snapshot()
}

// TimeTotal returns the sum of the time rows.
func (s *EditSession) TimeTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.time == nil {
		return 0
	}
	return s.time.AggregateTotal()
}

// MaterialTotal returns the sum of the material rows.
func (s *EditSession) MaterialTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.material == nil {
		return 0
	}
	return s.material.AggregateTotal()
}

// editMaterialField edits one field of a material row and returns the epoch
// of the session the edit landed in, so a lookup started from this edit can
// later tell whether a different order has been loaded since. ok is false
// when the session accepts no edits or the row does not exist.
func (s *EditSession) editMaterialField(row int, field ledger.MaterialField, raw string) (epoch uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.material == nil {
		return 0, false
	}
	if _, exists := s.material.Get(row); !exists {
		return 0, false
	}

	s.material.UpdateField(row, field, raw)
	return s.epoch, true
}

// materialKeyCurrent reports whether a lookup started for row at epoch is
// still worth presenting: the same order is still loaded, the row still
// exists, and its article key still reads as the queried key. Edits to other
// rows or fields do not invalidate the lookup.
func (s *EditSession) materialKeyCurrent(row int, epoch uint64, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.material == nil || epoch != s.epoch {
		return false
	}
	entry, ok := s.material.Get(row)
	if !ok {
		return false
	}
	return pricelist.NormalizeKey(entry.ArticleKey()) == key
}

func (s *EditSession) mutate(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.order == nil {
		return
	}
	apply()
}
