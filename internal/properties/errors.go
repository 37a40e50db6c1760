package properties

import "errors"

var (
	ErrMissingFields    = errors.New("Missing required fields")
	ErrPropertyNotFound = errors.New("Property not found")
	ErrNotOwner         = errors.New("Only the owner can modify this property")
	ErrNotActive        = errors.New("Property is not active")
	ErrAlreadySaved     = errors.New("Property already saved")
	ErrNotSaved         = errors.New("Property not in favorites")
)
