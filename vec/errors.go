package vec

import "errors"

// ErrOutOfRange is returned when an index is not within [0, Len()).
// Dead capacity beyond Len() is never addressable.
var ErrOutOfRange = errors.New("vec: index out of range")
