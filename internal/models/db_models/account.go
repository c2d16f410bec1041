package db_models

type SubscriptionStatus string

const (
	SubStatusNone              SubscriptionStatus = ""
	SubStatusIncomplete        SubscriptionStatus = "incomplete"
	SubStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubStatusActive            SubscriptionStatus = "active"
	SubStatusPastDue           SubscriptionStatus = "past_due"
	SubStatusCanceled          SubscriptionStatus = "canceled"
	SubStatusUnpaid            SubscriptionStatus = "unpaid"
	SubStatusRevoked           SubscriptionStatus = "revoked"
)

type PlanType string

const (
	PlanNone    PlanType = ""
	PlanMonthly PlanType = "monthly"
	PlanYearly  PlanType = "yearly"
)

// Account carries the subscription snapshot inline. There is no separate
// ledger table for current state; subscription_events keeps the history.
// The three snapshot fields (status, plan type, ends at) are only ever
// written together, never one at a time.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	SubscriptionStatus SubscriptionStatus `gorm:"size:32;index"`
	PlanType           PlanType           `gorm:"size:16"`
	SubscriptionEndsAt *int64

	BillingCustomerID     string `gorm:"index"`
	BillingSubscriptionID string `gorm:"index"`

	Contents []Content `gorm:"foreignKey:OwnerID"`
}
