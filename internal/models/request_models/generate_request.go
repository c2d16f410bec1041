package request_models

// GenerateRequest carries text already extracted from the uploaded PDF.
// Extraction itself happens upstream of this service.
type GenerateRequest struct {
	SourceText  string `json:"source_text" binding:"required"`
	ContentType string `json:"content_type" binding:"required,oneof=blog listicle course"`
	TitleHint   string `json:"title_hint"`
}
