package commands

import (
	"errors"

	"homebar/internal/pkg/guard"
)

var (
	ErrRepostNotificationsCommandIsNotConstructed = errors.New(
		"RepostNotificationsCommand must be created via NewRepostNotificationsCommand constructor",
	)
)

// RepostNotificationsCommand triggers a sweep over live orders that have no
// notification message, typically because the channel was unavailable when
// they were placed. This is the self-healing half of the best-effort
// notification contract.
type RepostNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRepostNotificationsCommand creates a parameterless repost sweep command.
func NewRepostNotificationsCommand() RepostNotificationsCommand {
	return RepostNotificationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RepostNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRepostNotificationsCommandIsNotConstructed)
}
