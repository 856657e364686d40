// Package seed loads the bundled datasets into the database and can pad the
// review table with generated rows for local demos.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"time"
)

//go:embed data
var datasets embed.FS

// Dataset names shipped with the binary.
const (
	DatasetTest        = "test"
	DatasetDevelopment = "development"
)

type CategoryRow struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UserRow struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ReviewRow timestamps are epoch milliseconds.
type ReviewRow struct {
	Title        string `json:"title"`
	Designer     string `json:"designer"`
	Owner        string `json:"owner"`
	ReviewImgURL string `json:"review_img_url"`
	ReviewBody   string `json:"review_body"`
	Category     string `json:"category"`
	CreatedAt    int64  `json:"created_at"`
	Votes        int    `json:"votes"`
}

// CommentRow points at its review by title.
type CommentRow struct {
	Body      string `json:"body"`
	BelongsTo string `json:"belongs_to"`
	CreatedBy string `json:"created_by"`
	Votes     int    `json:"votes"`
	CreatedAt int64  `json:"created_at"`
}

type Dataset struct {
	Categories []CategoryRow
	Users      []UserRow
	Reviews    []ReviewRow
	Comments   []CommentRow
}

// LoadDataset reads one of the embedded datasets by name.
func LoadDataset(name string) (*Dataset, error) {
	dir := path.Join("data", name)
	if _, err := fs.Stat(datasets, dir); err != nil {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}

	var data Dataset
	files := []struct {
		file string
		dst  any
	}{
		{"categories.json", &data.Categories},
		{"users.json", &data.Users},
		{"reviews.json", &data.Reviews},
		{"comments.json", &data.Comments},
	}

	for _, f := range files {
		raw, err := datasets.ReadFile(path.Join(dir, f.file))
		if err != nil {
			return nil, fmt.Errorf("read %s/%s: %w", name, f.file, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("parse %s/%s: %w", name, f.file, err)
		}
	}

	return &data, nil
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// reviewIDsByTitle maps each inserted review's title to its id.
func reviewIDsByTitle(reviews []insertedReview) map[string]int {
	ref := make(map[string]int, len(reviews))
	for _, review := range reviews {
		ref[review.Title] = review.ID
	}
	return ref
}

type commentInsert struct {
	ReviewID  int
	Author    string
	Body      string
	Votes     int
	CreatedAt time.Time
}

// resolveComments swaps review titles for ids and converts timestamps.
func resolveComments(comments []CommentRow, ids map[string]int) ([]commentInsert, error) {
	out := make([]commentInsert, 0, len(comments))
	for _, c := range comments {
		id, ok := ids[c.BelongsTo]
		if !ok {
			return nil, fmt.Errorf("comment by %s references unknown review %q", c.CreatedBy, c.BelongsTo)
		}
		out = append(out, commentInsert{
			ReviewID:  id,
			Author:    c.CreatedBy,
			Body:      c.Body,
			Votes:     c.Votes,
			CreatedAt: fromMillis(c.CreatedAt),
		})
	}
	return out, nil
}
