package domain

import "errors"

// Sentinel errors shared by the planning core and the layers around it.
// Callers wrap them with context and classify with errors.Is.
var (
	ErrInvalidDistance   = errors.New("road distance out of range")
	ErrInvalidCity       = errors.New("city name must be non-empty")
	ErrInvalidPackage    = errors.New("invalid package")
	ErrInvalidCapacity   = errors.New("vehicle capacity must be positive")
	ErrOverweightPackage = errors.New("package weight exceeds vehicle capacity")
	ErrUnreachableCity   = errors.New("city is unreachable from depot")
	ErrScenarioNotFound  = errors.New("scenario not found")
)
