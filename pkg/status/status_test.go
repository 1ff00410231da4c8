package status

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{OK, "OK"},
		{DriverConstructionFailed, "DRIVER_CONSTRUCTION_FAILED"},
		{InterfaceCreationFailed, "INTERFACE_CREATION_FAILED"},
		{HandlerUnregistrationFailed, "HANDLER_UNREGISTRATION_FAILED"},
		{InvalidState, "INVALID_STATE"},
		{Code(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeFatal(t *testing.T) {
	assert.True(t, DriverInstallFailed.Fatal())
	assert.True(t, ActivationFailed.Fatal())
	assert.False(t, DeactivationFailed.Fatal())
	assert.False(t, DetachFailed.Fatal())
	assert.False(t, UninstallFailed.Fatal())
}

func TestNewExtractsDriverStatus(t *testing.T) {
	cause := fmt.Errorf("install: %w", &DriverError{Status: 259, Msg: "invalid state"})
	err := New(DriverInstallFailed, "install", cause)

	assert.Equal(t, 259, err.DriverStatus)
	assert.Equal(t, DriverInstallFailed, CodeOf(err))
	assert.Contains(t, err.Error(), "status 259")
	assert.ErrorIs(t, err, cause)
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("start: %w", New(InvalidState, "start", nil))

	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(New(AttachFailed, "attach", nil), ErrInvalidState))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, OK, CodeOf(nil))
	assert.Equal(t, Unknown, CodeOf(errors.New("plain")))
	assert.Equal(t, DetachFailed, CodeOf(New(DetachFailed, "delete_glue", nil)))
}
