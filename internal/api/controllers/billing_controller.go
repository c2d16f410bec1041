package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"papermint/internal/models/request_models"
	"papermint/internal/services"
	"papermint/pkg/utils"
)

const signatureHeader = "X-Billing-Signature"

type BillingController struct {
	billingService services.BillingServiceInterface
	linkService    services.BillingLinkServiceInterface
	webhookSecret  string
}

func NewBillingController(
	billingService services.BillingServiceInterface,
	linkService services.BillingLinkServiceInterface,
	webhookSecret string,
) *BillingController {
	return &BillingController{
		billingService: billingService,
		linkService:    linkService,
		webhookSecret:  webhookSecret,
	}
}

// HandleWebhook processes signed subscription events from the billing
// provider. Verification happens against the raw body before anything is
// decoded; nothing is mutated on a bad signature. A 5xx tells the provider
// to redeliver, so success is only acknowledged after the snapshot commits.
func (b *BillingController) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := utils.VerifyWebhookSignature(rawBody, c.GetHeader(signatureHeader), b.webhookSecret); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var event request_models.BillingEventRequest
	if err := json.Unmarshal(rawBody, &event); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	err = b.billingService.ApplyEvent(c.Request.Context(), services.ProviderEvent{
		EventID:          event.ID,
		Type:             event.Type,
		CustomerID:       event.CustomerID,
		SubscriptionID:   event.SubscriptionID,
		Status:           event.Status,
		PlanHint:         event.PlanHint,
		Interval:         event.Interval,
		CurrentPeriodEnd: event.CurrentPeriodEnd,
		EndedAt:          event.EndedAt,
		Payload:          rawBody,
	})

	switch {
	case err == nil:
		utils.RespondSuccess(c, nil, "Event processed")
	case errors.Is(err, utils.ErrMalformedEvent):
		utils.RespondError(c, http.StatusBadRequest, "Malformed billing event")
	case errors.Is(err, utils.ErrBillingCustomerNotFound):
		// Ack unmatched events: retrying will never match them and a 5xx
		// here only produces a redelivery storm.
		log.Printf("webhook: unmatched customer for event %s", event.ID)
		utils.RespondSuccess(c, nil, "Event ignored")
	default:
		utils.RespondError(c, http.StatusInternalServerError, "Failed to process event")
	}
}

// Connect redirects the creator into the provider's OAuth authorize flow.
func (b *BillingController) Connect(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	c.Redirect(http.StatusFound, b.linkService.AuthorizeURL(userID))
}

// Callback finishes account linking. Errors redirect with an error code in
// the URL and leave billing fields untouched.
func (b *BillingController) Callback(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	state := c.Query("state")
	code := c.Query("code")

	if err := b.linkService.HandleCallback(c.Request.Context(), userID, state, code); err != nil {
		switch {
		case errors.Is(err, utils.ErrOAuthStateMismatch):
			c.Redirect(http.StatusFound, "/dashboard/billing?error=state_mismatch")
		case errors.Is(err, utils.ErrOAuthExchangeFailed):
			c.Redirect(http.StatusFound, "/dashboard/billing?error=exchange_failed")
		default:
			utils.HandleServiceError(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, "/dashboard/billing?connected=1")
}
