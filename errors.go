package vktriangle

import "github.com/pkg/errors"

var (
	ErrWindowCreation             = errors.New("failed to create window")
	ErrInstanceCreation           = errors.New("failed to create instance")
	ErrValidationLayerUnavailable = errors.New("validation layers requested, but not available")
	ErrExtensionNotPresent        = errors.New("extension not present")
	ErrDebugMessengerSetup        = errors.New("failed to set up debug messenger")
)

var errClosed = errors.New("resources already released")

// kindError tags a cause with one of the sentinel errors above so callers
// can match on the kind while the message keeps the driver's detail.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Is(target error) bool { return target == e.kind }

func (e *kindError) Unwrap() error { return e.cause }

func (e *kindError) Cause() error { return e.cause }

func withKind(kind, cause error) error {
	return errors.WithStack(&kindError{kind: kind, cause: cause})
}
