package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNoActiveDebt    = errors.New("no active debt")
	ErrDelivery        = errors.New("delivery failed")
	ErrUnauthorized    = errors.New("unauthorized")
)
