package calendar

import "errors"

// ErrInvalidMonth indicates a month cursor that cannot be parsed.
var ErrInvalidMonth = errors.New("invalid month")
