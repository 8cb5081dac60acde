package payments_fx

import (
	"gympoint/internal/repositories"
	"gympoint/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePaymentService, provideReceiptRepo)

func provideReceiptRepo(db *gorm.DB) repositories.ReceiptRepository {
	return repositories.NewReceiptRepository(db)
}

func providePaymentService(
	receiptRepo repositories.ReceiptRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
) services.PaymentService {
	return services.NewPaymentService(receiptRepo, scheduleRepo, userRepo)
}
