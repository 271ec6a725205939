package utils

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistrationRequest(t *testing.T) {
	t.Run("Patient Variant", func(t *testing.T) {
		body := []byte(`{"username":"alice","email":" Alice@Example.com ","password":"Secret#123","role":"patient",
			"firstName":"Alice","lastName":"Liddell","dateOfBirth":"1990-04-12","phone":"+15550100","address":"1 Rabbit Hole",
			"emergencyContact":{"name":"Carol","phone":"+15550101","relation":"sister"}}`)

		request, err := ParseRegistrationRequest(body)
		require.NoError(t, err)

		patient, ok := request.(*requests.PatientRegistration)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", patient.Email)
		assert.Equal(t, "1 Rabbit Hole", patient.Address)
		require.NotNil(t, patient.EmergencyContact)
		assert.Equal(t, "Carol", patient.EmergencyContact.Name)
	})

	t.Run("Doctor Variant", func(t *testing.T) {
		body := []byte(`{"username":"drbob","email":"bob@example.com","password":"Secret#123","role":"Doctor",
			"firstName":"Bob","lastName":"Stone","specialization":"Cardiology","qualification":"MD","experience":12,
			"phone":"+15550102","schedule":[{"day":"Monday","startTime":"09:00","endTime":"12:00"}]}`)

		request, err := ParseRegistrationRequest(body)
		require.NoError(t, err)

		doctor, ok := request.(*requests.DoctorRegistration)
		require.True(t, ok)
		assert.Equal(t, constvars.RoleDoctor, doctor.Account().Role)
		assert.Equal(t, 12, doctor.Experience)
		assert.Len(t, doctor.Schedule, 1)
	})

	t.Run("Admin Cannot Self Register", func(t *testing.T) {
		_, err := ParseRegistrationRequest([]byte(`{"role":"admin"}`))
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Missing Role", func(t *testing.T) {
		_, err := ParseRegistrationRequest([]byte(`{"username":"x"}`))
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := ParseRegistrationRequest([]byte(`{"role":`))
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}
