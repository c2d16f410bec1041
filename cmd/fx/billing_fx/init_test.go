package billing_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Env values set after process start (the godotenv path) must be visible to
// the config loader, so it may not capture the environment at package init.
func TestLoadBillingConfig_ReadsEnvAtCallTime(t *testing.T) {
	t.Setenv("BILLING_WEBHOOK_SECRET", "whsec_from_dotenv")
	t.Setenv("BILLING_PROVIDER", "acme-billing")

	cfg := loadBillingConfig()

	assert.Equal(t, "whsec_from_dotenv", cfg.WebhookSecret)
	assert.Equal(t, "acme-billing", cfg.ProviderName)
}

func TestLoadBillingConfig_ProviderNameDefault(t *testing.T) {
	t.Setenv("BILLING_WEBHOOK_SECRET", "whsec_test")
	t.Setenv("BILLING_PROVIDER", "")

	cfg := loadBillingConfig()

	assert.Equal(t, "papermint-billing", cfg.ProviderName)
}
