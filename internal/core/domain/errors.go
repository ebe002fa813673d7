package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrForbidden = errors.New("access forbidden")

	ErrSpotNotFound      = errors.New("spot not found")
	ErrSpotAlreadyBooked = errors.New("spot already booked")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")

	ErrAvailabilityNotFound = errors.New("availability window not found")
)
