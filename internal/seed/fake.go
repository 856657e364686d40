package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// AddFakeReviews appends n generated reviews owned by existing users in
// existing categories. Titles carry a numeric suffix so comment lookups by
// title stay unambiguous.
func AddFakeReviews(data *Dataset, n int, seed int64) error {
	if n <= 0 {
		return nil
	}
	if len(data.Users) == 0 || len(data.Categories) == 0 {
		return fmt.Errorf("dataset needs users and categories before generating reviews")
	}

	faker := gofakeit.New(seed)

	owners := make([]string, 0, len(data.Users))
	for _, u := range data.Users {
		owners = append(owners, u.Username)
	}
	categories := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, c.Slug)
	}

	end := time.Now().UTC()
	start := end.AddDate(-2, 0, 0)

	for i := range n {
		data.Reviews = append(data.Reviews, ReviewRow{
			Title:        fmt.Sprintf("%s #%d", faker.Sentence(4), len(data.Reviews)+1),
			Designer:     faker.Name(),
			Owner:        faker.RandomString(owners),
			ReviewImgURL: fmt.Sprintf("https://picsum.photos/seed/review-%d-%d/700/700", seed, i),
			ReviewBody:   faker.Paragraph(1, 3, 12, " "),
			Category:     faker.RandomString(categories),
			CreatedAt:    faker.DateRange(start, end).UnixMilli(),
			Votes:        faker.Number(0, 50),
		})
	}

	return nil
}
