package entity

import (
	"time"
)

type Review struct {
	ReviewID     int       `db:"review_id"`
	Owner        string    `db:"owner"`
	Title        string    `db:"title"`
	Category     string    `db:"category"`
	Designer     string    `db:"designer"`
	ReviewBody   string    `db:"review_body"`
	ReviewImgURL string    `db:"review_img_url"`
	CreatedAt    time.Time `db:"created_at"`
	Votes        int       `db:"votes"`
	CommentCount int       `db:"comment_count"` // aggregated on read, not a column
}
