package main

import "github.com/tjfontaine/bdfd-catalog/pkg/catalog"

// Exit codes beyond the generic 1.
const (
	exitNotFound  = 2
	exitTransport = 3
)

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

// catalogExit maps catalog failures onto distinct exit codes so scripts can
// tell a missing tag from an unreachable API.
func catalogExit(err error) error {
	switch {
	case catalog.IsNotFound(err):
		return exitError{code: exitNotFound, message: err.Error()}
	case catalog.IsTransport(err):
		return exitError{code: exitTransport, message: err.Error()}
	default:
		return err
	}
}
