package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is a clinic announcement, written by admins and readable by anyone
// once published.
type Post struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	Author    string    `db:"author" json:"author"`
	Published bool      `db:"published" json:"published"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
