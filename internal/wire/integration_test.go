//go:build integration

package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"backend-games/internal/seed"
	"backend-games/pkg/database"
	"backend-games/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var (
	testDB  *database.DB
	testApp *App
)

func TestMain(m *testing.M) {
	os.Exit(runIntegration(m))
}

func runIntegration(m *testing.M) int {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_games_test"),
		postgres.WithUsername("games"),
		postgres.WithPassword("games"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		panic(err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		panic(err)
	}
	testDB = database.NewFromPool(pool)
	defer testDB.Close()

	migrator, err := database.NewMigrator(testDB, zap.NewNop())
	if err != nil {
		panic(err)
	}
	if err := migrator.Up(); err != nil {
		panic(err)
	}

	testApp, err = Wiring(testDB, &utils.Config{HTTP: utils.HTTPConfig{AllowedOrigins: []string{"*"}}}, zap.NewNop())
	if err != nil {
		panic(err)
	}

	return m.Run()
}

func resetDB(t *testing.T) {
	t.Helper()
	data, err := seed.LoadDataset(seed.DatasetTest)
	require.NoError(t, err)
	require.NoError(t, seed.NewSeeder(testDB, zap.NewNop()).Seed(context.Background(), data))
}

func call(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func list(t *testing.T, body map[string]any, key string) []map[string]any {
	t.Helper()
	raw, ok := body[key].([]any)
	require.True(t, ok, "missing %s", key)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]any))
	}
	return out
}

func parseTime(t *testing.T, v any) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, v.(string))
	require.NoError(t, err)
	return ts
}

func TestIntegration_Categories(t *testing.T) {
	resetDB(t)

	rec, body := call(t, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	categories := list(t, body, "categories")
	assert.Len(t, categories, 4)
	for _, c := range categories {
		assert.Contains(t, c, "slug")
		assert.Contains(t, c, "description")
	}
}

func TestIntegration_ListReviews(t *testing.T) {
	resetDB(t)

	t.Run("default sort is created_at desc and stable", func(t *testing.T) {
		rec, body := call(t, http.MethodGet, "/api/reviews", "")
		require.Equal(t, http.StatusOK, rec.Code)
		reviews := list(t, body, "reviews")
		require.Len(t, reviews, 13)

		dates := make([]time.Time, 0, len(reviews))
		for _, r := range reviews {
			dates = append(dates, parseTime(t, r["created_at"]))
			_, isString := r["comment_count"].(string)
			assert.True(t, isString)
		}
		assert.True(t, sort.SliceIsSorted(dates, func(i, j int) bool { return dates[i].After(dates[j]) }))

		_, again := call(t, http.MethodGet, "/api/reviews", "")
		assert.Equal(t, body, again)
	})

	t.Run("sort by votes ascending", func(t *testing.T) {
		_, body := call(t, http.MethodGet, "/api/reviews?sort_by=votes&order=asc", "")
		reviews := list(t, body, "reviews")
		for i := 1; i < len(reviews); i++ {
			assert.LessOrEqual(t, reviews[i-1]["votes"].(float64), reviews[i]["votes"].(float64))
		}
	})

	t.Run("sort by comment_count", func(t *testing.T) {
		_, body := call(t, http.MethodGet, "/api/reviews?sort_by=comment_count", "")
		reviews := list(t, body, "reviews")
		assert.Equal(t, "3", reviews[0]["comment_count"])
	})

	t.Run("category filter", func(t *testing.T) {
		_, body := call(t, http.MethodGet, "/api/reviews?category=dexterity", "")
		reviews := list(t, body, "reviews")
		require.Len(t, reviews, 1)
		assert.Equal(t, "Jenga", reviews[0]["title"])
	})

	t.Run("existing category without reviews", func(t *testing.T) {
		rec, body := call(t, http.MethodGet, "/api/reviews?category=children%27s%20games", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, list(t, body, "reviews"))
	})

	rejections := []struct {
		query   string
		status  int
		message string
	}{
		{"sort_by=bananas", http.StatusBadRequest, "Sorting query is not valid"},
		{"order=bananas", http.StatusBadRequest, "Sorting order is not valid"},
		{"category=bananas", http.StatusNotFound, "Category not found :("},
		{"sort_by=bananas&order=bananas&category=bananas", http.StatusBadRequest, "Sorting query is not valid"},
		{"sort_by=votes%3BDROP TABLE reviews", http.StatusBadRequest, "Sorting query is not valid"},
	}
	for _, tt := range rejections {
		t.Run(tt.query, func(t *testing.T) {
			rec, body := call(t, http.MethodGet, "/api/reviews?"+strings.ReplaceAll(tt.query, " ", "%20"), "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestIntegration_GetReview(t *testing.T) {
	resetDB(t)

	rec, body := call(t, http.MethodGet, "/api/reviews/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	review := body["review"].(map[string]any)
	assert.Equal(t, "Jenga", review["title"])
	assert.Equal(t, "3", review["comment_count"])

	rec, body = call(t, http.MethodGet, "/api/reviews/88888888", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Review not found :(", body["message"])

	rec, body = call(t, http.MethodGet, "/api/reviews/something", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Bad request :(", body["message"])
}

func TestIntegration_Comments(t *testing.T) {
	resetDB(t)

	t.Run("empty list", func(t *testing.T) {
		rec, body := call(t, http.MethodGet, "/api/reviews/1/comments", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, list(t, body, "comments"))
	})

	t.Run("newest first", func(t *testing.T) {
		_, body := call(t, http.MethodGet, "/api/reviews/2/comments", "")
		comments := list(t, body, "comments")
		require.Len(t, comments, 3)
		for i := 1; i < len(comments); i++ {
			prev, cur := parseTime(t, comments[i-1]["created_at"]), parseTime(t, comments[i]["created_at"])
			assert.False(t, prev.Before(cur))
		}
	})

	t.Run("post ignores votes", func(t *testing.T) {
		rec, body := call(t, http.MethodPost, "/api/reviews/1/comments", `{"username":"mallionaire","body":"Great game","votes":100}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		comment := body["comment"].(map[string]any)
		assert.Equal(t, float64(0), comment["votes"])
		assert.Equal(t, float64(1), comment["review_id"])
		assert.Equal(t, "mallionaire", comment["author"])
	})

	t.Run("post rejections", func(t *testing.T) {
		rec, body := call(t, http.MethodPost, "/api/reviews/1/comments", `{"username":"nobody","body":"hi"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not found :(", body["message"])

		rec, body = call(t, http.MethodPost, "/api/reviews/999/comments", `{"username":"mallionaire","body":"hi"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Review not found :(", body["message"])

		rec, body = call(t, http.MethodPost, "/api/reviews/1/comments", `{"body":"hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields :(", body["message"])
	})

	t.Run("votes and delete", func(t *testing.T) {
		rec, body := call(t, http.MethodPatch, "/api/comments/1", `{"inc_votes":-1}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(15), body["comment"].(map[string]any)["votes"])

		rec, _ = call(t, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec, body = call(t, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Comment not found :(", body["message"])

		rec, body = call(t, http.MethodDelete, "/api/comments/something", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Bad request :(", body["message"])
	})
}

func TestIntegration_ReviewVotes(t *testing.T) {
	resetDB(t)

	rec, body := call(t, http.MethodPatch, "/api/reviews/1", `{"inc_votes":15}`)
	require.Equal(t, http.StatusOK, rec.Code)
	review := body["review"].(map[string]any)
	assert.Equal(t, float64(16), review["votes"])
	assert.Equal(t, "0", review["comment_count"])

	rec, body = call(t, http.MethodPatch, "/api/reviews/1", `{"inc_votes":-20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(-4), body["review"].(map[string]any)["votes"])

	rec, body = call(t, http.MethodPatch, "/api/reviews/1", `{"inc_votes":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "inc_votes must be a number :(", body["message"])

	rec, body = call(t, http.MethodPatch, "/api/reviews/999", `{"inc_votes":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Review not found :(", body["message"])
}

func TestIntegration_CreateReview(t *testing.T) {
	resetDB(t)

	rec, body := call(t, http.MethodPost, "/api/reviews",
		`{"owner":"mallionaire","title":"Catan","review_body":"Sheep for wood","designer":"Klaus Teuber","category":"euro game"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	review := body["review"].(map[string]any)
	assert.Equal(t, float64(14), review["review_id"])
	assert.Equal(t, "0", review["comment_count"])
	assert.NotEmpty(t, review["review_img_url"])

	rec, body = call(t, http.MethodPost, "/api/reviews",
		`{"owner":"nobody","title":"Catan","review_body":"Sheep for wood","designer":"Klaus Teuber","category":"euro game"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found :(", body["message"])

	rec, body = call(t, http.MethodPost, "/api/reviews",
		`{"owner":"mallionaire","title":"Catan","review_body":"Sheep","designer":"Klaus Teuber","category":"bananas"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found :(", body["message"])
}

func TestIntegration_Users(t *testing.T) {
	resetDB(t)

	_, body := call(t, http.MethodGet, "/api/users", "")
	assert.Len(t, list(t, body, "users"), 4)

	rec, body := call(t, http.MethodGet, "/api/users/mallionaire", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "haz", body["user"].(map[string]any)["name"])

	rec, body = call(t, http.MethodGet, "/api/users/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with the entered name was not found", body["message"])
}
