package response_models

type DraftResponse struct {
	Key               string           `json:"key"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Content           string           `json:"content"`
	OriginalContent   string           `json:"original_content"`
	ContentType       string           `json:"content_type"`
	Tags              []string         `json:"tags,omitempty"`
	KeyPoints         []string         `json:"key_points,omitempty"`
	Links             []string         `json:"links,omitempty"`
	Lessons           []LessonResponse `json:"lessons,omitempty"`
	EstimatedReadTime int              `json:"estimated_read_time"`
	CreatedAt         string           `json:"created_at"`
}
