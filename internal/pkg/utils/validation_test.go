package utils

import (
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatientRegistration() *requests.PatientRegistration {
	return &requests.PatientRegistration{
		RegisterAccount: requests.RegisterAccount{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "Secret#123",
			Role:      "patient",
			FirstName: "Alice",
			LastName:  "Liddell",
		},
		DateOfBirth: "1990-04-12",
		Phone:       "+15550100",
		Address:     "1 Rabbit Hole",
	}
}

func TestValidateStruct_PatientRegistration(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validPatientRegistration()))
	})

	t.Run("Weak Password", func(t *testing.T) {
		request := validPatientRegistration()
		request.Password = "password"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Contains(t, exceptions.FormatAllValidationErrors(err), "password")
	})

	t.Run("Future Date Of Birth", func(t *testing.T) {
		request := validPatientRegistration()
		request.DateOfBirth = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "dateOfBirth must not be in the future", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Malformed Date Of Birth", func(t *testing.T) {
		request := validPatientRegistration()
		request.DateOfBirth = "1990-13-40"

		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "dateOfBirth must be a date in YYYY-MM-DD format", exceptions.FormatFirstValidationError(err))
	})

	t.Run("All Failing Fields Reported", func(t *testing.T) {
		request := validPatientRegistration()
		request.Email = "not-an-email"
		request.Phone = ""

		err := ValidateStruct(request)
		require.Error(t, err)

		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Len(t, validationErrors, 2)
		message := exceptions.FormatAllValidationErrors(err)
		assert.Contains(t, message, "email must be a valid email")
		assert.Contains(t, message, "phone is required")
	})
}

func TestValidateStruct_ScheduleSlot(t *testing.T) {
	tests := []struct {
		name    string
		slot    requests.ScheduleSlot
		wantErr string
	}{
		{name: "Valid", slot: requests.ScheduleSlot{Day: "Monday", StartTime: "09:00", EndTime: "12:30"}},
		{name: "Unknown Day", slot: requests.ScheduleSlot{Day: "Funday", StartTime: "09:00", EndTime: "12:30"}, wantErr: "day must be a day of the week, such as Monday"},
		{name: "Bad Time", slot: requests.ScheduleSlot{Day: "Friday", StartTime: "9am", EndTime: "12:30"}, wantErr: "startTime must be a time in HH:MM format"},
		{name: "End Before Start", slot: requests.ScheduleSlot{Day: "Friday", StartTime: "13:00", EndTime: "12:30"}, wantErr: "endTime must be after startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.slot)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidateStruct_UpdateAppointmentStatus(t *testing.T) {
	assert.NoError(t, ValidateStruct(requests.UpdateAppointmentStatus{Status: "completed"}))
	assert.NoError(t, ValidateStruct(requests.UpdateAppointmentStatus{Status: "cancelled"}))

	err := ValidateStruct(requests.UpdateAppointmentStatus{Status: "scheduled"})
	require.Error(t, err)
	assert.Equal(t, "status must be one of [completed, cancelled]", exceptions.FormatFirstValidationError(err))
}

func TestValidateImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	contentType, err := ValidateImage(png, 1024)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	_, err = ValidateImage(png, 4)
	assert.Error(t, err, "oversized file should be rejected")

	_, err = ValidateImage([]byte("plain text, not an image"), 1024)
	assert.Error(t, err)

	_, err = ValidateImage(nil, 1024)
	assert.Error(t, err)
}

func TestValidateUrlParamID(t *testing.T) {
	assert.NoError(t, ValidateUrlParamID(GenerateID()))
	assert.Error(t, ValidateUrlParamID(""))
	assert.Error(t, ValidateUrlParamID("123"))
}
