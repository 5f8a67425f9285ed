package order

import (
	"errors"
	"fmt"
	"time"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNotificationNotAllowed is returned when a notification message is attached
	// to an order whose status no longer expects remote interaction.
	ErrNotificationNotAllowed = errors.New("order status does not allow a live notification message")
)

// Order represents a customer's request for one cocktail. It is the aggregate root
// that manages the order lifecycle from placement through preparation to a terminal
// state, together with the ownership token for the single live notification message
// mirroring the order in the chat channel.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid cocktail reference
//   - Must have a non-empty customer identifier
//   - Status transitions follow the lifecycle graph defined by Status
//   - A notification message may only be attached while the status still
//     expects remote interaction (Queued or InProgress)
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the free-text customer identifier grouping orders for display
	userID string

	// cocktailID references the ordered cocktail, immutable after creation
	cocktailID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// notificationMessageID is the ownership token for the live chat message
	// representing this order; nil means no live message exists
	notificationMessageID *int64

	// createdAt is set once at placement
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Queued status. This is the only way to place
// a valid order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - userID: Customer identifier (must be non-empty)
//   - cocktailID: Reference to the ordered cocktail (must be a valid UUID)
//
// Returns:
//   - *Order: The placed order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, userID string, cocktailID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Queued,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCocktailID(cocktailID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any valid status and an optional notification message token, since
// the stored representation may be in any point of the lifecycle, including
// the short window where a terminal order still carries its message token
// before cleanup.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	cocktailID kernel.UUID,
	status Status,
	notificationMessageID *int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCocktailID(cocktailID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.notificationMessageID = notificationMessageID
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the customer identifier that placed the order.
func (o *Order) UserID() string {
	return o.userID
}

// CocktailID returns the identifier of the ordered cocktail.
func (o *Order) CocktailID() kernel.UUID {
	return o.cocktailID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// NotificationMessageID returns the ownership token of the live notification
// message, or nil when no live message exists.
func (o *Order) NotificationMessageID() *int64 {
	return o.notificationMessageID
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Take moves the order from Queued to InProgress.
// Returns an error wrapping ErrInvalidStatusTransition without mutating
// the order if the edge is not allowed from the current status.
func (o *Order) Take() error {
	newStatus, err := o.status.Take()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete moves the order from InProgress to Ready.
// Ready is terminal: the notification message must subsequently be retired
// and detached by the caller once the external delete succeeds.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order from Queued or InProgress to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// TransitionTo applies the lifecycle edge leading to target, rejecting any
// request that is not an edge of the transition graph. The order is left
// untouched on rejection.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AttachNotificationMessage records the id of the chat message now representing
// this order. Only orders that still expect remote interaction may own a
// live message.
func (o *Order) AttachNotificationMessage(messageID int64) error {
	if !o.status.ExpectsNotification() {
		return fmt.Errorf("%w: status is %s", ErrNotificationNotAllowed, o.status)
	}

	o.notificationMessageID = &messageID
	o.touch()
	return nil
}

// DetachNotificationMessage clears the ownership token after the external
// message has been deleted. Safe to call when no message is attached.
func (o *Order) DetachNotificationMessage() {
	o.notificationMessageID = nil
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setCocktailID(cocktailID kernel.UUID) error {
	if err := cocktailID.Validate(); err != nil {
		return fmt.Errorf("cocktailId: %w", err)
	}
	o.cocktailID = cocktailID
	return nil
}
