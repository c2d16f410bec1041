package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"papermint/internal/api/controllers"
	"papermint/internal/repositories"
	"papermint/internal/services"
	mem "papermint/pkg/memcache"
)

var Module = fx.Provide(
	provideContentRepo,
	provideAccessService,
	provideContentService,
	provideContentController,
	provideDraftController,
)

func provideContentRepo(db *gorm.DB) repositories.ContentRepository {
	return repositories.NewContentRepository(db)
}

func provideAccessService() services.AccessServiceInterface {
	return services.NewAccessService()
}

func provideContentService(
	contentRepo repositories.ContentRepository,
	accountRepo repositories.AccountRepository,
	accessService services.AccessServiceInterface,
	billingService services.BillingServiceInterface,
	drafts mem.DraftStore,
) services.ContentServiceInterface {
	return services.NewContentService(contentRepo, accountRepo, accessService, billingService, drafts)
}

func provideContentController(contentService services.ContentServiceInterface) *controllers.ContentController {
	return controllers.NewContentController(contentService)
}

func provideDraftController(contentService services.ContentServiceInterface) *controllers.DraftController {
	return controllers.NewDraftController(contentService)
}
