package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrDuplicateEmail     = errors.New("Email already in use.")
	ErrUserNotFound       = errors.New("User not found")
	ErrOwnerNotFound      = errors.New("Owner not found")
	ErrRentalNotFound     = errors.New("Rental not found")
	ErrNotRentalOwner     = errors.New("User is not the owner of the rental")
)
