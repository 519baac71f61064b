package workorder

import (
	"errors"
	"strings"
	"time"

	"workorder/internal/core/domain/model/kernel"
	"workorder/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through NewWorkOrder or RestoreWorkOrder. This ensures all work
	// orders are properly validated.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")
)

// Details carries the optional descriptive fields of a work order. All of
// them may be blank; they describe the vehicle and workshop context rather
// than identifying the order.
type Details struct {
	Description string
	Category    string
	TrainNumber string
	Vehicle     string
	Location    string
	Track       string
}

// WorkOrder is the aggregate root for one maintenance job on a rail vehicle.
// It owns the order's identity, descriptive fields, and lifecycle status.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Order number, title, and customer must be non-blank
//   - Status is always a valid lifecycle state; transitions obey Status.TransitionTo
//   - Can only be created through NewWorkOrder or RestoreWorkOrder
//
// Line items (time and material) are not held on the aggregate: they live in
// the editing session's ledgers while being worked on, and in the entry store
// when persisted, keyed by the order's ID.
type WorkOrder struct {
	id          kernel.UUID
	orderNumber string
	title       string
	customer    string
	details     Details

	status Status

	createdAt  time.Time
	updatedAt  time.Time
	archivedAt *time.Time

	isConstructed bool
}

// NewWorkOrder creates a new WorkOrder in Open status with validation. This
// is the only way to create a work order for a brand-new maintenance job.
//
// The order number, title, and customer are required and must not be blank;
// everything in details is optional. The caller supplies now so the aggregate
// stays free of clock access.
func NewWorkOrder(
	id kernel.UUID,
	orderNumber, title, customer string,
	details Details,
	now time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		status:        Open,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setOrderNumber(orderNumber),
		wo.setTitle(title),
		wo.setCustomer(customer),
	); err != nil {
		return nil, err
	}
	wo.details = details

	return wo, nil
}

// RestoreWorkOrder rehydrates a WorkOrder from persistence. Unlike
// NewWorkOrder it accepts any valid status and the stored timestamps,
// but applies the same field validation.
func RestoreWorkOrder(
	id kernel.UUID,
	orderNumber, title, customer string,
	details Details,
	status Status,
	createdAt, updatedAt time.Time,
	archivedAt *time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		archivedAt:    archivedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setOrderNumber(orderNumber),
		wo.setTitle(title),
		wo.setCustomer(customer),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	wo.details = details
	wo.status = status

	return wo, nil
}

// Validate ensures the WorkOrder was constructed through NewWorkOrder or
// RestoreWorkOrder, preventing use of directly-instantiated structs.
func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by identity.
func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (w *WorkOrder) ID() kernel.UUID {
	return w.id
}

// OrderNumber returns the human-facing order number (unique per order).
func (w *WorkOrder) OrderNumber() string {
	return w.orderNumber
}

// Title returns the short description of the job.
func (w *WorkOrder) Title() string {
	return w.title
}

// Customer returns the customer the job is billed to.
func (w *WorkOrder) Customer() string {
	return w.customer
}

// Details returns the optional descriptive fields.
func (w *WorkOrder) Details() Details {
	return w.details
}

// Status returns the current lifecycle status.
func (w *WorkOrder) Status() Status {
	return w.status
}

// CreatedAt returns when the order was created.
func (w *WorkOrder) CreatedAt() time.Time {
	return w.createdAt
}

// UpdatedAt returns when the order was last modified.
func (w *WorkOrder) UpdatedAt() time.Time {
	return w.updatedAt
}

// ArchivedAt returns when the order was archived, or nil if it is active.
func (w *WorkOrder) ArchivedAt() *time.Time {
	return w.archivedAt
}

// Update replaces the order's editable fields. Status is deliberately not
// part of this operation; it changes only through ChangeStatus.
func (w *WorkOrder) Update(orderNumber, title, customer string, details Details, now time.Time) error {
	if err := errors.Join(
		w.setOrderNumber(orderNumber),
		w.setTitle(title),
		w.setCustomer(customer),
	); err != nil {
		return err
	}

	w.details = details
	w.updatedAt = now
	return nil
}

// ChangeStatus moves the order to next if the workflow permits it; the
// rejection (terminal-state origin or invalid status) is returned as an
// error carrying the reason. Callers persisting the order must discard the
// aggregate when the store update fails, so the change never outlives a
// failed commit.
func (w *WorkOrder) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := w.status.TransitionTo(next)
	if err != nil {
		return err
	}

	w.status = newStatus
	w.updatedAt = now
	return nil
}

// Archive marks the order as archived. Archiving is independent of the
// lifecycle status and is not reversible through the aggregate.
func (w *WorkOrder) Archive(now time.Time) {
	if w.archivedAt == nil {
		w.archivedAt = &now
		w.updatedAt = now
	}
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	w.orderNumber = orderNumber
	return nil
}

func (w *WorkOrder) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	w.title = title
	return nil
}

func (w *WorkOrder) setCustomer(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	w.customer = customer
	return nil
}
