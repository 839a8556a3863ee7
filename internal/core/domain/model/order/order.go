package order

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when placing an order without items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of a placed purchase. It owns the snapshotted
// items and tracks delivery progress.
//
// Order follows these invariants:
//   - every item references a distinct menu item
//   - total equals the sum of the item line totals
//   - status only moves from Pending to Delivered
//
// State changes are recorded as ChangedEvents which the unit of work drains
// on commit.
type Order struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	crewID   *kernel.UUID
	status   Status
	items    []Item
	total    kernel.Money
	placedAt time.Time

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder places an order for ownerID from the given items. The order starts
// Pending with no crew assigned, and records an order.placed event.
//
//	item, _ := order.NewItem(menuItemID, 2, unitPrice)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item}, time.Now())
func NewOrder(id, ownerID kernel.UUID, items []Item, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:   Pending,
		placedAt: placedAt.UTC(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(ownerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.raise(Placed, o.placedAt)
	return o, nil
}

// RestoreOrder rebuilds a stored order. The stored total must match the items.
func RestoreOrder(
	id, ownerID kernel.UUID,
	crewID *kernel.UUID,
	status Status,
	items []Item,
	total kernel.Money,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		crewID:   crewID,
		status:   status,
		placedAt: placedAt.UTC(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(ownerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if crewID != nil {
		if err := crewID.Validate(); err != nil {
			return nil, err
		}
	}
	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("stored total %s differs from item sum %s", total, o.total))
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Crew returns the assigned delivery crew member, or nil.
func (o *Order) Crew() *kernel.UUID {
	return o.crewID
}

// IsAssignedTo reports whether crewID is the order's delivery crew.
func (o *Order) IsAssignedTo(crewID kernel.UUID) bool {
	return o.crewID != nil && o.crewID.IsEqual(crewID)
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the snapshotted items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// AssignCrew sets the delivery crew member. The caller is responsible for
// checking that crewID holds the delivery-crew role. Reassigning the same
// member records nothing.
func (o *Order) AssignCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}
	if o.IsAssignedTo(crewID) {
		return nil
	}
	o.crewID = &crewID
	o.raise(CrewAssigned, time.Now())
	return nil
}

// SetStatus moves the order to next. Setting the current status is a no-op.
func (o *Order) SetStatus(next Status) error {
	changed, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	o.status = next
	o.raise(StatusChanged, time.Now())
	return nil
}

// MarkDeleted records the removal of the order. The repository performs the
// actual delete.
func (o *Order) MarkDeleted() {
	o.raise(Deleted, time.Now())
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return o.events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raise(kind ChangeKind, at time.Time) {
	o.events = append(o.events, newChangedEvent(kind, o, at))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	total := kernel.Zero()
	for _, it := range items {
		if err := it.menuItemID.Validate(); err != nil {
			return err
		}
		if _, dup := seen[it.menuItemID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("menu item %s appears more than once", it.menuItemID))
		}
		seen[it.menuItemID] = struct{}{}
		total = total.Add(it.lineTotal)
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
