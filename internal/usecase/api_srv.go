package usecase

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed endpoints.json
var endpointsJSON []byte

// APIService describes the available endpoints.
type APIService interface {
	Describe() map[string]any
}

type apiService struct {
	endpoints map[string]any
}

func NewAPIService() (APIService, error) {
	var endpoints map[string]any
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		return nil, fmt.Errorf("parse endpoints description: %w", err)
	}
	return &apiService{endpoints: endpoints}, nil
}

func (s *apiService) Describe() map[string]any {
	return s.endpoints
}
