package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"papermint/internal/api/controllers"
	"papermint/internal/repositories"
	"papermint/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, billingService services.BillingServiceInterface) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, billingService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
