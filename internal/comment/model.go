// Package comment implements comment threads on blog posts.
package comment

import (
	"time"

	"github.com/trendtrails/server/internal/user"
)

// Comment is a single remark on a blog post.
type Comment struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Message string `gorm:"size:500;not null" json:"message"`

	UserID int64     `gorm:"index;not null" json:"userId"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	BlogID int64 `gorm:"index;not null" json:"blogId"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName fixes the table name regardless of pluralization settings.
func (Comment) TableName() string { return "comments" }
