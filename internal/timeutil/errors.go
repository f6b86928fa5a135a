package timeutil

import "github.com/ayoisaiah/kicks/internal/apperr"

var errParsingTime = &apperr.Error{
	Message: "unable to understand the time %q",
}
