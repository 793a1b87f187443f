package service

import "errors"

// Errors
var (
	ErrMissingFields       = errors.New("name, email and lab name are required")
	ErrMissingEmail        = errors.New("email is required")
	ErrMissingLabURL       = errors.New("lab url is required")
	ErrActiveRequestExists = errors.New("an active request already exists for this email")
	ErrInvalidCredentials  = errors.New("invalid admin credentials")
	ErrRequestNotFound     = errors.New("request not found")
)
