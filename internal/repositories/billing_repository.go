package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"papermint/internal/models/db_models"
)

// SubscriptionSnapshot is the three-field group that is always written
// together. A nil EndsAt means "leave the stored value unchanged" is handled
// by the caller; here nil is written as NULL.
type SubscriptionSnapshot struct {
	Status   db_models.SubscriptionStatus
	PlanType db_models.PlanType
	EndsAt   *int64
}

type BillingRepository interface {
	FindAccountByCustomerID(ctx context.Context, customerID string) (*db_models.Account, error)
	// ApplySnapshot appends the audit event and updates the account snapshot
	// in one transaction. Redelivered events (same provider event id) are
	// skipped on the audit side and the snapshot write is repeated, which is
	// a no-op for snapshot-style payloads.
	ApplySnapshot(ctx context.Context, accountID uuid.UUID, snap SubscriptionSnapshot, event *db_models.SubscriptionEvent) error
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{
		db: db,
	}
}

func (r *billingRepository) FindAccountByCustomerID(ctx context.Context, customerID string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "billing_customer_id = ?", customerID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (r *billingRepository) ApplySnapshot(ctx context.Context, accountID uuid.UUID, snap SubscriptionSnapshot, event *db_models.SubscriptionEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if event != nil {
			event.AccountID = accountID
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(event).Error; err != nil {
				return err
			}
		}

		// Single statement so status/plan/ends_at can never diverge.
		return tx.Model(&db_models.Account{}).
			Where("id = ?", accountID).
			Updates(map[string]interface{}{
				"subscription_status":  snap.Status,
				"plan_type":            snap.PlanType,
				"subscription_ends_at": snap.EndsAt,
			}).Error
	})
}
