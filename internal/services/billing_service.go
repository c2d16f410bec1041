package services

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"
	"papermint/internal/models/db_models"
	"papermint/internal/repositories"
	"papermint/pkg/utils"
)

// ProviderEvent is a verified webhook payload handed in by the controller.
// Payloads are snapshots of the subscription's current state, not deltas, so
// applying the same event twice lands on the same stored state.
type ProviderEvent struct {
	EventID        string
	Type           string
	CustomerID     string
	SubscriptionID string

	Status   string
	PlanHint string
	Interval string

	CurrentPeriodEnd int64
	EndedAt          int64

	Payload []byte
}

type BillingServiceInterface interface {
	ApplyEvent(ctx context.Context, event ProviderEvent) error
	IsActive(account *db_models.Account) bool
	IsExpired(account *db_models.Account) bool
}

type BillingConfig struct {
	ProviderName  string
	WebhookSecret string
}

type BillingService struct {
	billingRepo repositories.BillingRepository
	cfg         BillingConfig
}

func NewBillingService(billingRepo repositories.BillingRepository, cfg BillingConfig) BillingServiceInterface {
	return &BillingService{
		billingRepo: billingRepo,
		cfg:         cfg,
	}
}

// ApplyEvent locates the account by billing customer id and writes the
// status/plan/ends-at snapshot atomically, appending the event to the audit
// log in the same transaction. The application never self-transitions a
// subscription; this is the only write path for the snapshot fields.
func (b *BillingService) ApplyEvent(ctx context.Context, event ProviderEvent) error {
	if event.CustomerID == "" {
		return utils.ErrMalformedEvent
	}

	account, err := b.billingRepo.FindAccountByCustomerID(ctx, event.CustomerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Expected for test events and deliveries that race account linking.
		// The caller decides whether to ack or ask the provider to retry.
		log.Printf("billing event %s: no account for customer %s", event.EventID, event.CustomerID)
		return utils.ErrBillingCustomerNotFound
	}

	snap := b.resolveSnapshot(account, event)

	// Revoked is terminal: later (or re-ordered earlier) events never revive
	// the subscription. The event is still recorded for history.
	if account.SubscriptionStatus == db_models.SubStatusRevoked && snap.Status != db_models.SubStatusRevoked {
		snap = repositories.SubscriptionSnapshot{
			Status:   db_models.SubStatusRevoked,
			PlanType: account.PlanType,
			EndsAt:   account.SubscriptionEndsAt,
		}
	}

	auditEvent := &db_models.SubscriptionEvent{
		Provider:        b.cfg.ProviderName,
		ProviderEventID: event.EventID,
		EventType:       event.Type,
		Status:          snap.Status,
		PlanType:        snap.PlanType,
		EndsAt:          snap.EndsAt,
		Payload:         datatypes.JSON(event.Payload),
	}

	if err := b.billingRepo.ApplySnapshot(ctx, account.ID, snap, auditEvent); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (b *BillingService) resolveSnapshot(account *db_models.Account, event ProviderEvent) repositories.SubscriptionSnapshot {
	status := db_models.SubscriptionStatus(strings.ToLower(event.Status))
	if status == db_models.SubStatusNone {
		// Events without a status field (e.g. invoice notifications) keep the
		// stored status.
		status = account.SubscriptionStatus
	}

	endsAt := account.SubscriptionEndsAt
	if event.CurrentPeriodEnd > 0 {
		v := event.CurrentPeriodEnd
		endsAt = &v
	} else if event.EndedAt > 0 {
		v := event.EndedAt
		endsAt = &v
	}

	return repositories.SubscriptionSnapshot{
		Status:   status,
		PlanType: derivePlanType(event.PlanHint, event.Interval, account.PlanType),
		EndsAt:   endsAt,
	}
}

func derivePlanType(hint, interval string, current db_models.PlanType) db_models.PlanType {
	switch strings.ToLower(hint) {
	case "monthly":
		return db_models.PlanMonthly
	case "yearly":
		return db_models.PlanYearly
	}

	switch strings.ToLower(interval) {
	case "month":
		return db_models.PlanMonthly
	case "year":
		return db_models.PlanYearly
	}

	return current
}

// IsActive answers creator entitlement: may this account publish and sell.
// A canceled subscription stays active through its paid period end, which is
// standard recurring-billing behavior.
func (b *BillingService) IsActive(account *db_models.Account) bool {
	if account == nil || account.SubscriptionEndsAt == nil {
		return false
	}

	switch account.SubscriptionStatus {
	case db_models.SubStatusActive, db_models.SubStatusCanceled:
		return *account.SubscriptionEndsAt > time.Now().Unix()
	default:
		return false
	}
}

// IsExpired is independent of status; it drives dashboard warnings, not
// access denial.
func (b *BillingService) IsExpired(account *db_models.Account) bool {
	if account == nil || account.SubscriptionEndsAt == nil {
		return false
	}
	return *account.SubscriptionEndsAt < time.Now().Unix()
}
