package middlewares

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                 *zap.Logger
	AuthUsecase         contracts.AuthUsecase
	AuthorizationPolicy contracts.AuthorizationPolicy
	InternalConfig      *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	authorizationPolicy contracts.AuthorizationPolicy,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:                 logger,
		AuthUsecase:         authUsecase,
		AuthorizationPolicy: authorizationPolicy,
		InternalConfig:      internalConfig,
	}
}
