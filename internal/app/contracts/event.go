package contracts

import (
	"context"
	"hospital-service/internal/app/models"
)

type AppointmentEventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error
}
