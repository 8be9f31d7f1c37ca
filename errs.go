package keyed

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrAttributeNotFound = fmt.Errorf("%w: no such attribute", ErrKeyNotFound)
	ErrType              = errors.New("type error")
	ErrValue             = errors.New("value error")
	ErrIndexOutOfRange   = errors.New("index out of range")
)
