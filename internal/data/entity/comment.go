package entity

import (
	"time"
)

type Comment struct {
	CommentID int       `db:"comment_id"`
	ReviewID  int       `db:"review_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	Votes     int       `db:"votes"`
	CreatedAt time.Time `db:"created_at"`
}
