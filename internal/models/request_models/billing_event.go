package request_models

// BillingEventRequest is the decoded webhook payload. The provider sends
// snapshot events: the body carries the full current state of a
// subscription, never a delta, which is what makes replay harmless.
type BillingEventRequest struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	CustomerID     string `json:"customer_id"`
	SubscriptionID string `json:"subscription_id"`

	Status   string `json:"status"`
	PlanHint string `json:"plan"`     // "monthly"/"yearly" when the provider knows it
	Interval string `json:"interval"` // "month"/"year" fallback for plan inference

	CurrentPeriodEnd int64 `json:"current_period_end"` // unix seconds, 0 = absent
	EndedAt          int64 `json:"ended_at"`           // unix seconds, 0 = absent
}
