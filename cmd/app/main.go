package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	accountfx "papermint/cmd/fx/account_fx"
	billingfx "papermint/cmd/fx/billing_fx"
	contentfx "papermint/cmd/fx/content_fx"
	dbfx "papermint/cmd/fx/db_fx"
	generationfx "papermint/cmd/fx/generation_fx"
	previewfx "papermint/cmd/fx/preview_fx"
	"papermint/internal/api/controllers"
	"papermint/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		previewfx.Module,
		accountfx.Module,
		billingfx.Module,
		contentfx.Module,
		generationfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				log.Printf("Starting HTTP server on port %s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	contentController *controllers.ContentController,
	draftController *controllers.DraftController,
	generationController *controllers.GenerationController,
	billingController *controllers.BillingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, contentController, draftController, generationController, billingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	contentController *controllers.ContentController,
	draftController *controllers.DraftController,
	generationController *controllers.GenerationController,
	billingController *controllers.BillingController) {

	accounts := r.Group("/accounts")
	accounts.POST("/signup", accountController.SignUp)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
	accounts.GET("/me/subscription", middleware.JWTAuthMiddleware(), accountController.SubscriptionStatus)

	// Public content route: token in the query string is the paywall bypass,
	// a bearer token (when present) identifies the owner.
	r.GET("/contents/:id", middleware.OptionalJWTMiddleware(), contentController.Get)

	authorized := r.Group("/", middleware.JWTAuthMiddleware())
	authorized.POST("/generate", generationController.Generate)
	authorized.GET("/drafts/:key", draftController.Get)
	authorized.DELETE("/drafts/:key", draftController.Discard)
	authorized.POST("/contents", contentController.Publish)
	authorized.GET("/contents", contentController.ListMine)
	authorized.PUT("/contents/:id", contentController.Update)
	authorized.DELETE("/contents/:id", contentController.Delete)
	authorized.GET("/billing/connect", billingController.Connect)
	authorized.GET("/billing/callback", billingController.Callback)

	r.POST("/webhooks/billing", billingController.HandleWebhook)
}
