package servicedesk

import "errors"

var (
	ErrLoginNotValid     = errors.New("login invalid")
	ErrPasswordNotValid  = errors.New("password invalid")
	ErrPasswordNotEqual  = errors.New("password not equal")
	ErrPermissionDenied  = errors.New("not authorized")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrServiceRequired   = errors.New("service is required")
	ErrNameRequired      = errors.New("name is required")
	ErrPhoneRequired     = errors.New("phone is required")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
)
