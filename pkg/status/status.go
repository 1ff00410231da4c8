package status

import (
	"errors"
	"fmt"
)

// Code classifies a lifecycle failure.
type Code uint8

const (
	// OK indicates no failure.
	OK Code = 0

	// DriverConstructionFailed indicates a MAC or PHY instance could not be built.
	DriverConstructionFailed Code = 1

	// DriverInstallFailed indicates the link driver install operation failed.
	DriverInstallFailed Code = 2

	// StackInitFailed indicates event loop or network stack initialization failed.
	StackInitFailed Code = 3

	// InterfaceCreationFailed indicates the network interface could not be created.
	InterfaceCreationFailed Code = 4

	// GlueCreationFailed indicates the driver/interface glue could not be created.
	GlueCreationFailed Code = 5

	// AttachFailed indicates the glue could not be attached to the interface.
	AttachFailed Code = 6

	// HandlerRegistrationFailed indicates an event handler could not be registered.
	HandlerRegistrationFailed Code = 7

	// ActivationFailed indicates the link driver state machine did not start.
	ActivationFailed Code = 8

	// DeactivationFailed indicates the link driver did not stop (non-fatal).
	DeactivationFailed Code = 9

	// HandlerUnregistrationFailed indicates an event handler could not be removed (non-fatal).
	HandlerUnregistrationFailed Code = 10

	// DetachFailed indicates the interface or glue could not be released (non-fatal).
	DetachFailed Code = 11

	// UninstallFailed indicates the driver or a sub-driver could not be released (non-fatal).
	UninstallFailed Code = 12

	// InvalidState indicates Start while not stopped, or Stop with nothing to stop.
	InvalidState Code = 13

	// Unknown classifies errors that never passed through New.
	Unknown Code = 0xFF
)

// String returns the code name.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case DriverConstructionFailed:
		return "DRIVER_CONSTRUCTION_FAILED"
	case DriverInstallFailed:
		return "DRIVER_INSTALL_FAILED"
	case StackInitFailed:
		return "STACK_INIT_FAILED"
	case InterfaceCreationFailed:
		return "INTERFACE_CREATION_FAILED"
	case GlueCreationFailed:
		return "GLUE_CREATION_FAILED"
	case AttachFailed:
		return "ATTACH_FAILED"
	case HandlerRegistrationFailed:
		return "HANDLER_REGISTRATION_FAILED"
	case ActivationFailed:
		return "ACTIVATION_FAILED"
	case DeactivationFailed:
		return "DEACTIVATION_FAILED"
	case HandlerUnregistrationFailed:
		return "HANDLER_UNREGISTRATION_FAILED"
	case DetachFailed:
		return "DETACH_FAILED"
	case UninstallFailed:
		return "UNINSTALL_FAILED"
	case InvalidState:
		return "INVALID_STATE"
	default:
		return "UNKNOWN"
	}
}

// Fatal reports whether the code aborts a start sequence.
// Stop-path codes are logged and teardown continues.
func (c Code) Fatal() bool {
	switch c {
	case DeactivationFailed, HandlerUnregistrationFailed, DetachFailed, UninstallFailed, OK:
		return false
	default:
		return true
	}
}

// ErrInvalidState is returned by Start and Stop when the guard rejects the call.
// It matches any *Error with code InvalidState under errors.Is.
var ErrInvalidState = &Error{Code: InvalidState}

// StatusCoder is implemented by driver errors that carry a numeric status.
type StatusCoder interface {
	StatusCode() int
}

// Error is a classified lifecycle failure.
type Error struct {
	// Code is the failure class.
	Code Code

	// Op names the failed operation (e.g. "install", "new_interface").
	Op string

	// DriverStatus is the underlying driver status code, 0 if unknown.
	DriverStatus int

	// Err is the underlying cause, if any.
	Err error
}

// New classifies err under code for the named operation. The driver status is
// taken from the first error in the chain implementing StatusCoder.
func New(code Code, op string, err error) *Error {
	e := &Error{Code: code, Op: op, Err: err}
	var sc StatusCoder
	if errors.As(err, &sc) {
		e.DriverStatus = sc.StatusCode()
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.DriverStatus != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.DriverStatus)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so sentinels like ErrInvalidState work
// with errors.Is regardless of Op or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first *Error in err's chain,
// OK for nil and Unknown for unclassified errors.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// DriverError is a driver failure carrying a numeric status code.
// Simulated and mocked drivers return it so the status survives classification.
type DriverError struct {
	Status int
	Msg    string
}

// Error implements the error interface.
func (e *DriverError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Msg, e.Status)
}

// StatusCode returns the driver status code.
func (e *DriverError) StatusCode() int {
	return e.Status
}

// Compile-time interface satisfaction check.
var _ StatusCoder = (*DriverError)(nil)
