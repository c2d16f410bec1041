package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ContentType string

const (
	ContentTypeBlog     ContentType = "blog"
	ContentTypeListicle ContentType = "listicle"
	ContentTypeCourse   ContentType = "course"
)

// Content is a published (or publishable) piece: blog post, listicle, or
// multi-lesson course. Body holds the generated text, OriginalBody the
// extracted source it was produced from.
type Content struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;index"`

	Title       string
	Description string
	ContentType ContentType `gorm:"size:16;index"`

	Body         string `gorm:"type:text"`
	OriginalBody string `gorm:"type:text"`

	Tags      pq.StringArray `gorm:"type:text[]"`
	KeyPoints pq.StringArray `gorm:"type:text[]"`
	Links     pq.StringArray `gorm:"type:text[]"`

	// Course lessons as [{"title","content"},...]; empty for blog/listicle.
	Lessons datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	EstimatedReadTime int

	Published  bool  `gorm:"index"`
	PriceCents int64 // minor units

	// Possession of this string bypasses the paywall (handed out after
	// purchase). Not a platform credential.
	AccessToken string `gorm:"index"`

	Owner Account `gorm:"foreignKey:OwnerID"`
}
