package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSeatUnavailable    = errors.New("seat is not available")
	ErrCartNotFound       = errors.New("cart not found or has expired")
	ErrOrderNotFound      = errors.New("no order in progress for this session")
	ErrUserAlreadyExists  = errors.New("user already exists")
)
