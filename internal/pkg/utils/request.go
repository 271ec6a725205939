package utils

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ParseRegistrationRequest peeks at the role discriminator and decodes the
// body into the matching registration variant.
func ParseRegistrationRequest(body []byte) (requests.RegistrationRequest, error) {
	if !gjson.ValidBytes(body) {
		return nil, exceptions.ErrCannotParseJSON(nil)
	}

	role := strings.ToLower(strings.TrimSpace(gjson.GetBytes(body, "role").String()))
	switch role {
	case constvars.RolePatient:
		request := new(requests.PatientRegistration)
		if err := json.Unmarshal(body, request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		SanitizePatientRegistration(request)
		return request, nil
	case constvars.RoleDoctor:
		request := new(requests.DoctorRegistration)
		if err := json.Unmarshal(body, request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		SanitizeDoctorRegistration(request)
		return request, nil
	default:
		return nil, exceptions.ErrUnknownRegistrationRole(role)
	}
}
