package wire

import (
	"backend-games/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	// GET /api/categories - List all categories
	r.Get("/categories", categoryHandler.ListCategories)
}

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/reviews", func(r chi.Router) {
		// GET /api/reviews?category&sort_by&order - List reviews
		r.Get("/", reviewHandler.ListReviews)
		// POST /api/reviews - Create review
		r.Post("/", reviewHandler.CreateReview)

		r.Route("/{review_id}", func(r chi.Router) {
			r.Get("/", reviewHandler.GetReview)
			// PATCH /api/reviews/{review_id} - Increment votes
			r.Patch("/", reviewHandler.UpdateVotes)

			r.Get("/comments", reviewHandler.ListComments)
			r.Post("/comments", reviewHandler.AddComment)
		})
	})
}

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	r.Patch("/comments/{comment_id}", commentHandler.UpdateVotes)
	r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)
}

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Get("/users", userHandler.ListUsers)
	r.Get("/users/{username}", userHandler.GetUser)
}
