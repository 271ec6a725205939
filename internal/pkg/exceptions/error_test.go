package exceptions

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	cause := errors.New("connection reset")

	err := ErrMongoDBFindDocument(cause)

	assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
	assert.Contains(t, err.DevMessage, "connection reset")
	assert.Contains(t, err.Location.FunctionName, "TestBuildNewCustomError", "location should point at the caller of the constructor")
	assert.ErrorIs(t, err, cause)
}

func TestStatusCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Validation", err: ErrCannotParseJSON(nil), want: constvars.StatusBadRequest},
		{name: "Duplicate", err: ErrEmailAlreadyExist(nil), want: constvars.StatusConflict},
		{name: "Invalid Credentials", err: ErrInvalidCredentials(nil), want: constvars.StatusUnauthorized},
		{name: "Auth Required", err: ErrTokenMissing(nil), want: constvars.StatusUnauthorized},
		{name: "Authorization", err: ErrPermissionDenied(constvars.RolePatient, "updateAppointmentStatus"), want: constvars.StatusForbidden},
		{name: "Not Found", err: ErrDocumentNotFound(nil, constvars.ResourceAppointment), want: constvars.StatusNotFound},
		{name: "Transition", err: ErrAppointmentStatusTransition("a1", "completed", "cancelled"), want: constvars.StatusConflict},
		{name: "Wrapped", err: fmt.Errorf("outer: %w", ErrProfileNotFound(nil, constvars.RolePatient)), want: constvars.StatusNotFound},
		{name: "Plain Error", err: errors.New("boom"), want: constvars.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCodeOf(tt.err))
		})
	}
}

func TestErrInvalidCredentials_DoesNotRevealField(t *testing.T) {
	err := ErrInvalidCredentials(nil)

	assert.Equal(t, "invalid credentials", err.ClientMessage)
}

func TestErrAppointmentStatusTransition(t *testing.T) {
	err := ErrAppointmentStatusTransition("a1", constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled)

	customErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "appointment is already completed and can no longer be changed", customErr.ClientMessage)
	assert.Equal(t, "appointment a1 cannot transition from completed to cancelled", customErr.DevMessage)
}
