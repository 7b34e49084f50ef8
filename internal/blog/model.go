// Package blog implements the publishing surface: posts with tags,
// likes, an optional thumbnail, and their comment threads.
package blog

import (
	"time"

	"github.com/trendtrails/server/internal/comment"
	"github.com/trendtrails/server/internal/user"
)

// Blog is a published post. Thumbnail serializes as base64 in JSON.
// Tags are stored JSON-encoded so the schema works on both sqlite and
// postgres.
type Blog struct {
	ID        int64    `gorm:"primaryKey" json:"id"`
	Title     string   `gorm:"size:50;not null;uniqueIndex" json:"title"`
	Body      string   `gorm:"type:text;not null" json:"body"`
	Thumbnail []byte   `json:"thumbnail,omitempty"`
	Tags      []string `gorm:"serializer:json" json:"tags"`
	Likes     int      `gorm:"not null;default:0" json:"likes"`

	UserID int64     `gorm:"index;not null" json:"userId"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Comments []comment.Comment `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName fixes the table name regardless of pluralization settings.
func (Blog) TableName() string { return "blogs" }
