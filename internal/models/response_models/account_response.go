package response_models

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SubscriptionStatusResponse struct {
	Status    string `json:"status"`
	PlanType  string `json:"plan_type,omitempty"`
	EndsAt    string `json:"ends_at,omitempty"`
	IsActive  bool   `json:"is_active"`
	IsExpired bool   `json:"is_expired"`
}
