package domain

import "errors"

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrCustomerNotFound  = errors.New("customer not found")
)
