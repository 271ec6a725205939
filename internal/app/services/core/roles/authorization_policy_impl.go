package roles

import (
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// roleGateRef stands in for both owner and caller when only the role matters.
const roleGateRef = "role-gate"

type authorizationPolicy struct {
	enforcer *casbin.SyncedEnforcer
	Log      *zap.Logger
}

func NewAuthorizationPolicy(enforcer *casbin.SyncedEnforcer, logger *zap.Logger) contracts.AuthorizationPolicy {
	return &authorizationPolicy{
		enforcer: enforcer,
		Log:      logger,
	}
}

func (p *authorizationPolicy) Authorize(role, action, resourceOwnerRef, callerRef string) error {
	if callerRef == "" {
		return p.deny(role, action)
	}
	return p.enforce(role, action, resourceOwnerRef, callerRef)
}

func (p *authorizationPolicy) AuthorizeRole(role, action string) error {
	return p.enforce(role, action, roleGateRef, roleGateRef)
}

func (p *authorizationPolicy) enforce(role, action, owner, caller string) error {
	allowed, err := p.enforcer.Enforce(role, action, owner, caller)
	if err != nil {
		p.Log.Error("authorizationPolicy.enforce error evaluating policy",
			zap.String(constvars.LoggingRoleKey, role),
			zap.String(constvars.LoggingActionKey, action),
			zap.Error(err),
		)
		return exceptions.ErrPolicyEvaluation(err)
	}
	if !allowed {
		return p.deny(role, action)
	}
	return nil
}

func (p *authorizationPolicy) deny(role, action string) error {
	p.Log.Debug("authorizationPolicy denied",
		zap.String(constvars.LoggingRoleKey, role),
		zap.String(constvars.LoggingActionKey, action),
	)
	return exceptions.ErrPermissionDenied(role, action)
}
