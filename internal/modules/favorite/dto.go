package favorite

import "tripmark/internal/domain"

type AddFavoriteRequest struct {
	State     string `json:"state" binding:"required"`
	PlaceName string `json:"place_name" binding:"required"`
	Category  string `json:"category" binding:"required"`
}

type FavoriteItem struct {
	ID        int64  `json:"id"`
	State     string `json:"state"`
	PlaceName string `json:"place_name"`
	Category  string `json:"category"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteItem `json:"favorites"`
}

func ToFavoriteListResponse(favorites []domain.Favorite) FavoriteListResponse {
	items := make([]FavoriteItem, len(favorites))
	for i, f := range favorites {
		items[i] = FavoriteItem{
			ID:        f.ID,
			State:     f.State,
			PlaceName: f.PlaceName,
			Category:  f.Category,
		}
	}
	return FavoriteListResponse{Favorites: items}
}
