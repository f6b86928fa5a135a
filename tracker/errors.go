package tracker

import "github.com/ayoisaiah/kicks/internal/apperr"

var (
	ErrUnknownIntensity = &apperr.Error{
		Message: "unknown intensity %q: expected one of %s",
	}

	ErrBusy = &apperr.Error{
		Message: "another action is waiting for confirmation",
	}
)
