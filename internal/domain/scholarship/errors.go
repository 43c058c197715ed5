package scholarship

import "errors"

var (
	// ErrInvalidDueDate indicates a due date that is not a valid calendar date.
	ErrInvalidDueDate = errors.New("invalid due date")
	// ErrInvalidRecord indicates a record missing required fields.
	ErrInvalidRecord = errors.New("invalid scholarship record")
	// ErrRecordNotFound indicates no record carries the requested name.
	ErrRecordNotFound = errors.New("scholarship not found")
	// ErrUnknownCatalog indicates a compiled-in catalog name that does not exist.
	ErrUnknownCatalog = errors.New("unknown catalog")
	// ErrInvalidQuery indicates an empty or malformed search query.
	ErrInvalidQuery = errors.New("invalid search query")
)
