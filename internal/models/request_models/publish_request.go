package request_models

type PublishRequest struct {
	DraftKey   string `json:"draft_key" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	Published  bool   `json:"published"`
}

type UpdateContentRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Body        *string  `json:"body"`
	Tags        []string `json:"tags"`
	PriceCents  *int64   `json:"price_cents"`
	Published   *bool    `json:"published"`
}
