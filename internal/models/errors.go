package models

import (
	"errors"
)

var (
	ErrToolNotRegistered     = errors.New("tool not registered")
	ErrToolDisabled          = errors.New("tool disabled")
	ErrDependencyUnsatisfied = errors.New("tool dependency unsatisfied")
	ErrFeatureDisabled       = errors.New("feature disabled")

	ErrValidation = errors.New("validation error")
	ErrBackend    = errors.New("backend request failed")
)
