package repository

import (
	"context"
	"errors"
	"strings"

	"tripmark/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a favorite does not exist for the given user.
// A favorite owned by someone else is indistinguishable from a missing one.
var ErrNotFound = errors.New("favorite not found")

// FavoriteRepository persists a user's saved places.
type FavoriteRepository interface {
	// Add inserts a favorite and reports whether a new row was created.
	// A duplicate (user, state, place, category) tuple is not an error:
	// Add returns created=false and leaves the existing row untouched.
	Add(ctx context.Context, f *domain.Favorite) (created bool, err error)
	Remove(ctx context.Context, userID, favoriteID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Exists(ctx context.Context, userID int64, state, placeName, category string) (bool, error)
	Count(ctx context.Context, userID int64) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, f *domain.Favorite) (bool, error) {
	exists, err := r.Exists(ctx, f.UserID, f.State, f.PlaceName, f.Category)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(f).Error
	})
	if err != nil {
		// The unique index is the arbiter under concurrency: a second
		// insert of the same tuple lost the race, it did not fail.
		if IsUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, favoriteID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Scoping the delete by user_id is the ownership check.
		result := tx.Where("id = ? AND user_id = ?", favoriteID, userID).
			Delete(&domain.Favorite{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	favorites := make([]domain.Favorite, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID int64, state, placeName, category string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND state = ? AND place_name = ? AND category = ?",
			userID, state, placeName, category).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// IsUniqueViolation reports whether err is a unique-constraint rejection
// from either supported driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// SQLite has no typed error here, match the driver message.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
