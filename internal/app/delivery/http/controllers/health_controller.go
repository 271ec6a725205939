package controllers

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"net/http"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	healthStatusUp   = "up"
	healthStatusDown = "down"
)

// HealthCheckFunc reports whether one backing dependency is reachable.
type HealthCheckFunc func(ctx context.Context) error

type HealthController struct {
	Log            *zap.Logger
	Checks         map[string]HealthCheckFunc
	InternalConfig *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, checks map[string]HealthCheckFunc, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:            logger,
		Checks:         checks,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	result := responses.HealthCheck{
		Status:  healthStatusUp,
		Version: ctrl.InternalConfig.App.Version,
		Checks:  make(map[string]string, len(names)),
	}
	for _, name := range names {
		if err := ctrl.Checks[name](ctx); err != nil {
			ctrl.Log.Warn("HealthController.Check dependency unavailable",
				zap.String("dependency", name),
				zap.Error(err),
			)
			result.Checks[name] = healthStatusDown
			result.Status = healthStatusDown
			continue
		}
		result.Checks[name] = healthStatusUp
	}

	code, message := constvars.StatusOK, constvars.HealthCheckSuccessMessage
	if result.Status != healthStatusUp {
		code, message = constvars.StatusServiceUnavailable, constvars.HealthCheckDegradedMessage
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: code == constvars.StatusOK,
		Message: message,
		Data:    result,
	})
}
