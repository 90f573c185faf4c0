package availability

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrSportFilter = errors.New("venue does not offer this sport")
)
