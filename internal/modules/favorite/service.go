package favorite

import (
	"context"
	"strings"

	"tripmark/internal/domain"
	"tripmark/internal/repository"
)

// AddResult distinguishes a freshly created favorite from an existing
// one. Re-adding the same tuple is idempotent success, not an error,
// but callers must be able to tell the two apart.
type AddResult struct {
	ID      int64
	Created bool
}

type Service struct {
	repo repository.FavoriteRepository
}

func NewService(repo repository.FavoriteRepository) *Service {
	return &Service{repo: repo}
}

// List returns the user's favorites newest first. No favorites is an
// empty slice, never an error.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Add(ctx context.Context, userID int64, state, placeName, category string) (*AddResult, error) {
	if strings.TrimSpace(state) == "" ||
		strings.TrimSpace(placeName) == "" ||
		strings.TrimSpace(category) == "" {
		return nil, ErrMissingField
	}

	f := &domain.Favorite{
		UserID:    userID,
		State:     state,
		PlaceName: placeName,
		Category:  category,
	}
	created, err := s.repo.Add(ctx, f)
	if err != nil {
		return nil, err
	}

	return &AddResult{ID: f.ID, Created: created}, nil
}

// Remove deletes one of the user's own favorites. A favorite owned by
// another user looks exactly like a missing one: repository.ErrNotFound.
func (s *Service) Remove(ctx context.Context, userID, favoriteID int64) error {
	return s.repo.Remove(ctx, userID, favoriteID)
}
