package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// destination does not exist in the catalog.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a request fails input
// validation (e.g. missing budget, no interests, minBudget above maxBudget).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
