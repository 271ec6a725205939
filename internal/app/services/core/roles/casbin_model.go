package roles

import (
	"hospital-service/internal/pkg/constvars"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// An "own" scope only matches when the resource owner is the caller.
const policyModel = `
[request_definition]
r = sub, act, owner, caller

[policy_definition]
p = sub, act, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act && (p.scope == "any" || r.owner == r.caller)
`

var policyRules = [][]string{
	{constvars.RolePatient, constvars.ActionCreateAppointment, constvars.PolicyScopeAny},

	{constvars.RoleAdmin, constvars.ActionListAppointments, constvars.PolicyScopeAny},
	{constvars.RoleDoctor, constvars.ActionListAppointments, constvars.PolicyScopeAny},
	{constvars.RolePatient, constvars.ActionListAppointments, constvars.PolicyScopeAny},

	{constvars.RoleAdmin, constvars.ActionUpdateAppointmentStatus, constvars.PolicyScopeAny},
	{constvars.RoleDoctor, constvars.ActionUpdateAppointmentStatus, constvars.PolicyScopeOwn},

	{constvars.RoleAdmin, constvars.ActionCancelAppointment, constvars.PolicyScopeAny},
	{constvars.RoleDoctor, constvars.ActionCancelAppointment, constvars.PolicyScopeOwn},
	{constvars.RolePatient, constvars.ActionCancelAppointment, constvars.PolicyScopeOwn},

	{constvars.RoleDoctor, constvars.ActionUpdateDoctorProfile, constvars.PolicyScopeOwn},
	{constvars.RolePatient, constvars.ActionUpdatePatientProfile, constvars.PolicyScopeOwn},
	{constvars.RolePatient, constvars.ActionAppendMedicalHistory, constvars.PolicyScopeOwn},

	{constvars.RoleAdmin, constvars.ActionViewPatientRecord, constvars.PolicyScopeAny},
	{constvars.RoleDoctor, constvars.ActionViewPatientRecord, constvars.PolicyScopeAny},

	{constvars.RoleAdmin, constvars.ActionViewOwnProfile, constvars.PolicyScopeOwn},
	{constvars.RoleDoctor, constvars.ActionViewOwnProfile, constvars.PolicyScopeOwn},
	{constvars.RolePatient, constvars.ActionViewOwnProfile, constvars.PolicyScopeOwn},

	{constvars.RoleAdmin, constvars.ActionUploadProfilePicture, constvars.PolicyScopeOwn},
	{constvars.RoleDoctor, constvars.ActionUploadProfilePicture, constvars.PolicyScopeOwn},
	{constvars.RolePatient, constvars.ActionUploadProfilePicture, constvars.PolicyScopeOwn},

	{constvars.RoleAdmin, constvars.ActionLogout, constvars.PolicyScopeOwn},
	{constvars.RoleDoctor, constvars.ActionLogout, constvars.PolicyScopeOwn},
	{constvars.RolePatient, constvars.ActionLogout, constvars.PolicyScopeOwn},
}

func NewCasbinEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(policyModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}

	_, err = enforcer.AddPolicies(policyRules)
	if err != nil {
		return nil, err
	}
	return enforcer, nil
}
