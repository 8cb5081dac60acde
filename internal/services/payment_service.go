package services

import (
	"context"
	"time"

	"gympoint/internal/models/db_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
)

type PaymentService interface {
	// SubmitPayment records one receipt per covered month, all-or-nothing:
	// if any target month is already paid, no receipt is created.
	SubmitPayment(ctx context.Context, scheduleID, clientUserID uuid.UUID, months int) ([]db_models.Receipt, error)
	// HasPaidFor reports whether any receipt covers the month of monthDate
	// (current month when nil) for the (client, schedule) pair.
	HasPaidFor(ctx context.Context, clientUserID, scheduleID uuid.UUID, monthDate *time.Time) (bool, error)
	ListReceipts(ctx context.Context, clientID *uuid.UUID) ([]db_models.Receipt, error)
}

type paymentService struct {
	receiptRepo  repositories.ReceiptRepository
	scheduleRepo repositories.ScheduleRepository
	userRepo     repositories.UserRepository
	now          func() time.Time
}

func NewPaymentService(
	receiptRepo repositories.ReceiptRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
) PaymentService {
	return &paymentService{
		receiptRepo:  receiptRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (s *paymentService) SubmitPayment(ctx context.Context, scheduleID, clientUserID uuid.UUID, months int) ([]db_models.Receipt, error) {
	if months < 1 {
		return nil, utils.ValidationError("months must be at least 1.")
	}

	clientUser, err := s.userRepo.FindByID(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if clientUser == nil {
		return nil, utils.NotFoundError("User does not exist.")
	}
	if !clientUser.IsClient() {
		return nil, utils.ValidationError("User is not a client.")
	}

	ws, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, utils.NotFoundError("WeekSchedule not found.")
	}

	enrolled, err := s.scheduleRepo.IsEnrolled(ctx, ws.ID, clientUser.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, utils.ConflictError("Client is not enrolled in this WeekSchedule.")
	}

	// Month 0 is the current month; month i is i calendar months later.
	base := utils.MonthStart(s.now())
	targetMonths := make([]db_models.PaidMonth, 0, months)
	for i := 0; i < months; i++ {
		targetMonths = append(targetMonths, db_models.PaidMonthOf(utils.AddMonths(base, i)))
	}

	receipts := make([]*db_models.Receipt, 0, months)
	for _, month := range targetMonths {
		receipt := &db_models.Receipt{
			ClientID:        clientUser.ID,
			ClientEmail:     clientUser.Email,
			WeekScheduleID:  ws.ID,
			WorkoutTypeName: ws.WorkoutTypeName,
			TotalAmount:     ws.Price,
		}
		if err := receipt.SetMonths([]db_models.PaidMonth{month}); err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	conflict, err := s.receiptRepo.CreateAllUnlessPaid(ctx, clientUser.ID, ws.ID, targetMonths, receipts)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, utils.ConflictError("Client already paid for %s %d.", conflict.Month, conflict.Year)
	}

	out := make([]db_models.Receipt, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, *r)
	}
	return out, nil
}

func (s *paymentService) HasPaidFor(ctx context.Context, clientUserID, scheduleID uuid.UUID, monthDate *time.Time) (bool, error) {
	clientUser, err := s.userRepo.FindByID(ctx, clientUserID)
	if err != nil {
		return false, err
	}
	if clientUser == nil {
		return false, utils.NotFoundError("User does not exist.")
	}
	if !clientUser.IsClient() {
		return false, utils.ValidationError("User is not a client.")
	}

	at := s.now()
	if monthDate != nil {
		at = *monthDate
	}
	target := db_models.PaidMonthOf(at)

	receipts, err := s.receiptRepo.FindByClientAndSchedule(ctx, clientUser.ID, scheduleID)
	if err != nil {
		return false, err
	}

	for i := range receipts {
		if receipts[i].Covers(target) {
			return true, nil
		}
	}
	return false, nil
}

func (s *paymentService) ListReceipts(ctx context.Context, clientID *uuid.UUID) ([]db_models.Receipt, error) {
	if clientID != nil {
		return s.receiptRepo.ListByClient(ctx, *clientID)
	}
	return s.receiptRepo.ListAll(ctx)
}
