package config

import "github.com/ayoisaiah/kicks/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errNoCategories = &apperr.Error{
		Message: "at least one category must be configured",
	}

	errTooManyCategories = &apperr.Error{
		Message: "at most %d categories can be configured, got %d",
	}

	errBlankCategory = &apperr.Error{
		Message: "category names cannot be empty",
	}

	errDuplicateCategory = &apperr.Error{
		Message: "category %q is listed more than once",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
	}
)
