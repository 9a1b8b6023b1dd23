package pico

import "errors"

var (
	// Configuration errors
	ErrConfigSectionNotFound = errors.New("pico: config section not found")
	ErrApplicationNil        = errors.New("pico: application is nil")

	// Service registry errors
	ErrServiceAlreadyRegistered = errors.New("pico: service already registered")
	ErrServiceNotFound          = errors.New("pico: service not found")
	ErrTargetNotPointer         = errors.New("pico: target must be a non-nil pointer")
	ErrServiceWrongType         = errors.New("pico: service doesn't satisfy requested type")

	// Dependency resolution errors
	ErrCircularDependency      = errors.New("pico: circular module dependency detected")
	ErrModuleDependencyMissing = errors.New("pico: module depends on a module that was never registered")
	ErrRequiredServiceNotFound = errors.New("pico: required service not found for module")

	// Lifecycle errors
	ErrAlreadyStarted = errors.New("pico: application already started")
	ErrNotStarted     = errors.New("pico: application not started")
)
