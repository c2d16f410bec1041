package response_models

// ContentResponse is the full view: only returned to the owner or to a
// caller holding a valid access token for published content.
type ContentResponse struct {
	ID                string           `json:"id"`
	OwnerID           string           `json:"owner_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	ContentType       string           `json:"content_type"`
	Body              string           `json:"body"`
	OriginalBody      string           `json:"original_body,omitempty"`
	Tags              []string         `json:"tags,omitempty"`
	KeyPoints         []string         `json:"key_points,omitempty"`
	Links             []string         `json:"links,omitempty"`
	Lessons           []LessonResponse `json:"lessons,omitempty"`
	EstimatedReadTime int              `json:"estimated_read_time"`
	Published         bool             `json:"published"`
	PriceCents        int64            `json:"price_cents"`
}

type LessonResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TeaserResponse is what a paywalled caller gets: metadata plus a truncated
// body, never the original document.
type TeaserResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ContentType string   `json:"content_type"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags,omitempty"`
	PriceCents  int64    `json:"price_cents"`
	Paywalled   bool     `json:"paywalled"`
	Reason      string   `json:"reason"`
}
