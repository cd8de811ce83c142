package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrUnknownStyle        = errors.New("unknown style type")
	ErrAnchorPoolExhausted = errors.New("not enough unique subject anchors for selected style count")
	ErrTaskAlreadyTerminal = errors.New("task already terminal")
	ErrEmptyResult         = errors.New("completed without result urls")
)
