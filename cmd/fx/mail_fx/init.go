package mail_fx

import (
	"os"
	"strconv"

	"gympoint/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.MailService {
	port := 587 // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "GymPoint",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName:    "GymPoint",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	return services.NewSMTPMailService(cfg)
}
