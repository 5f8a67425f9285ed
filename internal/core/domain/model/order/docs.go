// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order tracks a customer's request for one cocktail through the statuses
// Queued, InProgress, Ready, and Cancelled. The aggregate also owns the token
// of the single live notification message mirroring the order in the chat
// channel: presence of the token means a live interactive representation
// exists and may be acted upon, absence means there is nothing to reconcile.
//
// All status mutations go through the aggregate's transition methods, which
// enforce the lifecycle graph. Persisting a transition additionally requires
// the repository's compare-and-set update, so concurrent local and remote
// actors can never both apply a transition from the same source state.
package order
