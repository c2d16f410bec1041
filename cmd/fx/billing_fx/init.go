package billing_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
	"papermint/internal/api/controllers"
	"papermint/internal/repositories"
	"papermint/internal/services"
)

var Module = fx.Provide(
	provideBillingConfig,
	provideBillingRepo,
	provideBillingService,
	provideBillingLinkService,
	provideBillingController,
)

// loadBillingConfig reads the environment at call time, not package init,
// so values loaded from .env by godotenv are picked up.
func loadBillingConfig() services.BillingConfig {
	return services.BillingConfig{
		ProviderName:  getEnvWithDefault("BILLING_PROVIDER", "papermint-billing"),
		WebhookSecret: os.Getenv("BILLING_WEBHOOK_SECRET"),
	}
}

func provideBillingConfig() services.BillingConfig {
	cfg := loadBillingConfig()
	if cfg.WebhookSecret == "" {
		log.Fatal("BILLING_WEBHOOK_SECRET is required")
	}
	return cfg
}

func provideBillingRepo(db *gorm.DB) repositories.BillingRepository {
	return repositories.NewBillingRepository(db)
}

func provideBillingService(billingRepo repositories.BillingRepository, cfg services.BillingConfig) services.BillingServiceInterface {
	return services.NewBillingService(billingRepo, cfg)
}

func provideBillingLinkService(accountRepo repositories.AccountRepository) services.BillingLinkServiceInterface {
	oauthConfig := &oauth2.Config{
		ClientID:     os.Getenv("BILLING_OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("BILLING_OAUTH_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("BILLING_OAUTH_REDIRECT_URL"),
		Endpoint: oauth2.Endpoint{
			AuthURL:  os.Getenv("BILLING_OAUTH_AUTH_URL"),
			TokenURL: os.Getenv("BILLING_OAUTH_TOKEN_URL"),
		},
	}

	return services.NewBillingLinkService(accountRepo, oauthConfig)
}

func provideBillingController(
	billingService services.BillingServiceInterface,
	linkService services.BillingLinkServiceInterface,
	cfg services.BillingConfig,
) *controllers.BillingController {
	return controllers.NewBillingController(billingService, linkService, cfg.WebhookSecret)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
