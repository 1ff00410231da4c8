// Package status defines the error taxonomy shared by the link lifecycle
// components.
//
// Every failure that crosses a component boundary is a *Error carrying a
// Code, the operation that failed, and (when the cause reports one) the
// underlying driver status code:
//
//	err := binding.Construct(cfg)
//	if status.CodeOf(err) == status.DriverInstallFailed {
//	    // ...
//	}
//
//	if errors.Is(err, status.ErrInvalidState) {
//	    // Start called while not stopped
//	}
//
// Codes marked non-fatal (DeactivationFailed, HandlerUnregistrationFailed,
// DetachFailed, UninstallFailed) only occur on the stop path; they are
// reported after teardown has completed.
package status
