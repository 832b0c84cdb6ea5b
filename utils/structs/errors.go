package structs

import "errors"

// ErrTooLarge is returned when a serialized object declares a size larger than allowed.
var ErrTooLarge = errors.New("object too large")
