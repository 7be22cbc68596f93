package domain

import "time"

// Favorite is one saved place on a user's personal list.
// A user can save the same place name under different categories,
// but the (user, state, place, category) tuple is unique.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_place"`
	State     string    `json:"state" gorm:"size:100;not null;uniqueIndex:idx_user_place"`
	PlaceName string    `json:"place_name" gorm:"size:300;not null;uniqueIndex:idx_user_place"`
	Category  string    `json:"category" gorm:"size:100;not null;uniqueIndex:idx_user_place"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Favorite) TableName() string { return "favorites" }
