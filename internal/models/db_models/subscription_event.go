package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubscriptionEvent is the append-only audit trail of billing webhook
// deliveries. ApplyEvent writes a row here in the same transaction as the
// account snapshot update; entitlement checks never read this table.
// (provider, provider_event_id) dedupes redelivered events.
type SubscriptionEvent struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`

	Provider        string `gorm:"size:32;uniqueIndex:ux_subscription_events_provider_event,priority:1"`
	ProviderEventID string `gorm:"size:191;uniqueIndex:ux_subscription_events_provider_event,priority:2"`
	EventType       string `gorm:"size:64;index"`

	// Snapshot values the event resolved to.
	Status   SubscriptionStatus `gorm:"size:32"`
	PlanType PlanType           `gorm:"size:16"`
	EndsAt   *int64

	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
