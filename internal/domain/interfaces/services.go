package interfaces

import (
	"context"

	domaintypes "keycalc/internal/domain/types"
)

// KeypadService drives expression sessions one key press at a time.
type KeypadService interface {
	SubmitKey(
		ctx context.Context,
		id domaintypes.SessionID,
		key domaintypes.Key,
	) (domaintypes.DisplayState, error)
	Display(ctx context.Context, id domaintypes.SessionID) (domaintypes.DisplayState, error)
	Reset(ctx context.Context, id domaintypes.SessionID) error

	// Evaluate runs a whole expression without touching any session.
	Evaluate(ctx context.Context, expression string) (string, error)
}

// SessionOpener issues fresh sessions. Remote servers hand out their own
// identifiers; local services accept any caller-chosen name.
type SessionOpener interface {
	OpenSession(ctx context.Context) (domaintypes.SessionID, domaintypes.DisplayState, error)
}
