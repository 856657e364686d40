package response

import "backend-games/internal/data/entity"

type CategoryResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, CategoryResponse{Slug: category.Slug, Description: category.Description})
	}
	return out
}
