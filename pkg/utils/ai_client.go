package utils

import (
	"context"
	"fmt"
	"strings"
)

// ContentGeneratorInterface is the opaque AI boundary: source text in,
// JSON draft out. Implementations must return a single JSON object matching
// the draft schema in GenerationPrompt.
type ContentGeneratorInterface interface {
	GenerateContentJSON(ctx context.Context, sourceText string, contentType string, titleHint string) (string, error)
}

// GenerationPrompt builds the instruction sent to either provider. The schema
// is shared so the parsing side stays provider-agnostic.
func GenerationPrompt(sourceText, contentType, titleHint string) string {
	var b strings.Builder

	switch contentType {
	case "listicle":
		b.WriteString("Rewrite the source document as an engaging listicle.")
	case "course":
		b.WriteString("Rewrite the source document as a multi-lesson course. Split the material into 3-10 self-contained lessons.")
	default:
		b.WriteString("Rewrite the source document as a polished blog post.")
	}

	b.WriteString(`

Respond with ONLY a JSON object, no markdown fences, in this shape:
{
  "title": "string",
  "description": "one-paragraph summary",
  "content": "full generated body in markdown",
  "tags": ["string"],
  "key_points": ["string"],
  "links": ["string"],
  "estimated_read_time": 5,
  "lessons": [{"title": "string", "content": "string"}]
}
"lessons" must be an empty array unless the requested format is a course.
`)

	if titleHint != "" {
		b.WriteString(fmt.Sprintf("\nPreferred working title: %s\n", titleHint))
	}

	b.WriteString("\nSource document:\n")
	b.WriteString(sourceText)

	return b.String()
}
