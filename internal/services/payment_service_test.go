package services

import (
	"context"
	"testing"
	"time"

	"gympoint/internal/models/db_models"
	"gympoint/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	svc          *paymentService
	userRepo     *fakeUserRepo
	scheduleRepo *fakeScheduleRepo
	receiptRepo  *fakeReceiptRepo
	client       *db_models.User
	schedule     *db_models.WeekSchedule
}

// newPaymentFixture pins the clock to mid-August 2026 and enrolls one client
// in a schedule priced at 50.
func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	scheduleRepo := newFakeScheduleRepo()
	receiptRepo := newFakeReceiptRepo()

	svc := NewPaymentService(receiptRepo, scheduleRepo, userRepo).(*paymentService)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC) }

	client := userRepo.add(&db_models.User{Email: "ana@example.com", Client: &db_models.Client{}})
	schedule := scheduleRepo.add(&db_models.WeekSchedule{
		WorkoutTypeName: "Yoga",
		Days:            []string{"Monday"},
		Quota:           5,
		Price:           50,
	})
	_, err := scheduleRepo.Enroll(context.Background(), schedule.ID, client.ID)
	require.NoError(t, err)

	return &paymentFixture{
		svc:          svc,
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		receiptRepo:  receiptRepo,
		client:       client,
		schedule:     schedule,
	}
}

func TestSubmitPaymentOneReceiptPerMonth(t *testing.T) {
	f := newPaymentFixture(t)

	receipts, err := f.svc.SubmitPayment(context.Background(), f.schedule.ID, f.client.ID, 3)

	require.NoError(t, err)
	require.Len(t, receipts, 3)

	wantMonths := []db_models.PaidMonth{
		{Month: time.August, Year: 2026},
		{Month: time.September, Year: 2026},
		{Month: time.October, Year: 2026},
	}
	for i, receipt := range receipts {
		months, err := receipt.Months()
		require.NoError(t, err)
		require.Len(t, months, 1)
		assert.Equal(t, wantMonths[i], months[0])
		assert.Equal(t, 50.0, receipt.TotalAmount)
		assert.Equal(t, "ana@example.com", receipt.ClientEmail)
		assert.Equal(t, "Yoga", receipt.WorkoutTypeName)
	}
}

func TestSubmitPaymentAllOrNothingOnOverlap(t *testing.T) {
	f := newPaymentFixture(t)

	// September is already covered.
	existing := &db_models.Receipt{
		ClientID:       f.client.ID,
		WeekScheduleID: f.schedule.ID,
	}
	require.NoError(t, existing.SetMonths([]db_models.PaidMonth{{Month: time.September, Year: 2026}}))
	f.receiptRepo.receipts = append(f.receiptRepo.receipts, existing)

	_, err := f.svc.SubmitPayment(context.Background(), f.schedule.ID, f.client.ID, 2)

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Contains(t, err.Error(), "September 2026")
	assert.Len(t, f.receiptRepo.receipts, 1)
}

func TestSubmitPaymentRequiresEnrollment(t *testing.T) {
	f := newPaymentFixture(t)
	stranger := f.userRepo.add(&db_models.User{Email: "bob@example.com", Client: &db_models.Client{}})

	_, err := f.svc.SubmitPayment(context.Background(), f.schedule.ID, stranger.ID, 1)

	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Empty(t, f.receiptRepo.receipts)
}

func TestSubmitPaymentRejectsZeroMonths(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.SubmitPayment(context.Background(), f.schedule.ID, f.client.ID, 0)

	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestSubmitPaymentRejectsNonClient(t *testing.T) {
	f := newPaymentFixture(t)
	instructor := f.userRepo.add(&db_models.User{Email: "coach@example.com", Instructor: &db_models.Instructor{}})

	_, err := f.svc.SubmitPayment(context.Background(), f.schedule.ID, instructor.ID, 1)

	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestHasPaidFor(t *testing.T) {
	f := newPaymentFixture(t)
	_, err := f.svc.SubmitPayment(context.Background(), f.schedule.ID, f.client.ID, 2)
	require.NoError(t, err)

	// Current month is covered.
	paid, err := f.svc.HasPaidFor(context.Background(), f.client.ID, f.schedule.ID, nil)
	require.NoError(t, err)
	assert.True(t, paid)

	// November was never paid.
	november := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	paid, err = f.svc.HasPaidFor(context.Background(), f.client.ID, f.schedule.ID, &november)
	require.NoError(t, err)
	assert.False(t, paid)
}

func TestListReceiptsFiltersByClient(t *testing.T) {
	f := newPaymentFixture(t)
	other := f.userRepo.add(&db_models.User{Email: "bob@example.com", Client: &db_models.Client{}})
	_, err := f.scheduleRepo.Enroll(context.Background(), f.schedule.ID, other.ID)
	require.NoError(t, err)

	_, err = f.svc.SubmitPayment(context.Background(), f.schedule.ID, f.client.ID, 1)
	require.NoError(t, err)
	_, err = f.svc.SubmitPayment(context.Background(), f.schedule.ID, other.ID, 1)
	require.NoError(t, err)

	all, err := f.svc.ListReceipts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.svc.ListReceipts(context.Background(), &f.client.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.client.ID, mine[0].ClientID)
}
