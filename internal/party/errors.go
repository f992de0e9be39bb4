package party

import "errors"

// Domain errors. SearchFailed and the validation errors below are all
// recoverable: the triggering state is preserved and the user action can
// simply be retried.
var (
	// ErrSearchFailed wraps a provider failure surfaced at the collection
	// boundary. The collection's candidates and selection are untouched.
	ErrSearchFailed = errors.New("search failed")

	// ErrInvalidTime reports a time value that does not parse as HH:MM.
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidTimeRange reports a start time after the end time.
	ErrInvalidTimeRange = errors.New("start time is after end time")

	// ErrUnknownItemAction reports a card action outside view/add/delete.
	ErrUnknownItemAction = errors.New("unknown item action")

	// ErrNoCurrentParty reports registry operations that need a current
	// party when none is selected.
	ErrNoCurrentParty = errors.New("no current party")

	// ErrIndexOutOfRange reports a party index outside the registry's
	// sequence.
	ErrIndexOutOfRange = errors.New("party index out of range")

	// ErrStaleSearch reports a search resolution superseded by a newer
	// search on the same collection. Callers may treat it as a no-op.
	ErrStaleSearch = errors.New("stale search superseded")
)
