package services

import (
	"context"

	"gympoint/internal/models/db_models"
	"gympoint/internal/models/request_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
)

type HealthRecordService interface {
	Create(ctx context.Context, actor *db_models.User, req request_models.CreateHealthRecordRequest) (*db_models.HealthRecord, error)
	ListByClient(ctx context.Context, clientUserID uuid.UUID) ([]db_models.HealthRecord, error)
}

type healthRecordService struct {
	healthRepo repositories.HealthRecordRepository
	userRepo   repositories.UserRepository
}

func NewHealthRecordService(
	healthRepo repositories.HealthRecordRepository,
	userRepo repositories.UserRepository,
) HealthRecordService {
	return &healthRecordService{
		healthRepo: healthRepo,
		userRepo:   userRepo,
	}
}

func (s *healthRecordService) Create(ctx context.Context, actor *db_models.User, req request_models.CreateHealthRecordRequest) (*db_models.HealthRecord, error) {
	if actor.Instructor == nil {
		return nil, utils.NotAuthorizedError("User is not an instructor.")
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, utils.ValidationError("clientId is not a valid id.")
	}

	clientUser, err := s.userRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if clientUser == nil {
		return nil, utils.NotFoundError("User does not exist.")
	}
	if !clientUser.IsClient() {
		return nil, utils.ValidationError("User is not a client.")
	}

	takenBy := actor.Instructor.ID
	record := &db_models.HealthRecord{
		ClientID:          clientUser.ID,
		TakenByID:         &takenBy,
		Weight:            req.Weight,
		Height:            req.Height,
		Pulse:             req.Pulse,
		SystolicPressure:  req.SystolicPressure,
		DiastolicPressure: req.DiastolicPressure,
	}

	if err := s.healthRepo.Insert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *healthRecordService) ListByClient(ctx context.Context, clientUserID uuid.UUID) ([]db_models.HealthRecord, error) {
	clientUser, err := s.userRepo.FindByID(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if clientUser == nil {
		return nil, utils.NotFoundError("User does not exist.")
	}

	return s.healthRepo.ListByClient(ctx, clientUser.ID)
}
