package errstore

import "errors"

var (
	ErrNotFoundData   = errors.New("data not found")
	ErrLoginNotUnique = errors.New("login already taken")
	ErrNameNotUnique  = errors.New("name already taken")
	ErrOrderConflict  = errors.New("order was changed by another request")
)
