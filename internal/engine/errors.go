package engine

import "fmt"

// DuplicateEngineError is returned when an engine identifier is registered twice.
type DuplicateEngineError struct {
	ID string
}

func (e *DuplicateEngineError) Error() string {
	return fmt.Sprintf("engine '%s' is already registered", e.ID)
}

// UnknownEngineError is returned when a requested engine identifier is not registered.
type UnknownEngineError struct {
	ID string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine '%s'", e.ID)
}
