package users_fx

import (
	"gympoint/internal/repositories"
	"gympoint/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo, provideTokenRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenRepo(db *gorm.DB) repositories.TokenRepository {
	return repositories.NewTokenRepository(db)
}

func provideUserService(
	userRepo repositories.UserRepository,
	scheduleRepo repositories.ScheduleRepository,
	tokenRepo repositories.TokenRepository,
	mailService services.MailService,
) services.UserService {
	return services.NewUserService(userRepo, scheduleRepo, tokenRepo, mailService)
}
