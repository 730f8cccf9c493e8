package service

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)
