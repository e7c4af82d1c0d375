package booking_flow

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/service/booking_flow/models"
)

type FlowService interface {
	Open(ctx context.Context, req *models.OpenRequest) (*models.FlowResponse, error)
	Get(ctx context.Context, flowID uuid.UUID, userID int64) (*models.FlowResponse, error)
	SetSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.FlowResponse, error)
	SetPet(ctx context.Context, req *models.PetRequest) (*models.FlowResponse, error)
	Next(ctx context.Context, flowID uuid.UUID, userID int64) (*models.FlowResponse, error)
	Back(ctx context.Context, flowID uuid.UUID, userID int64) (*models.FlowResponse, error)
	Abandon(ctx context.Context, flowID uuid.UUID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
