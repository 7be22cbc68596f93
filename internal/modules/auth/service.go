package auth

import (
	"context"
	"database/sql/driver"
	"errors"
	"log"
	"strings"
	"time"

	"tripmark/internal/domain"
	"tripmark/internal/pkg/validator"
	"tripmark/internal/repository"

	"github.com/sethvargo/go-retry"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxResolveAttempts    = 3
	defaultResolveBackoff = 2 * time.Second
)

// dummyHash is compared against when the username is unknown, so that a
// failed login costs the same with or without a matching user row.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type jwtService interface {
	GenerateToken(userID int64, username string) (string, error)
}

// Service contains all business logic for registration, login and
// session-user resolution.
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService

	// resolveBackoff is the fixed delay between resolve retries.
	// Tests shrink it to avoid real sleeps.
	resolveBackoff time.Duration
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		users:          users,
		jwt:            jwt,
		resolveBackoff: defaultResolveBackoff,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	// Gin binding already rejects bad HTTP input; this covers callers
	// that reach the service directly.
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}
	username := strings.TrimSpace(req.Username)

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two registrations can race past the exists check; the unique
		// index decides and the loser is a duplicate, not a 500.
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Resolve loads the user behind a session token. The store may have
// dropped an idle connection, so connectivity failures are retried up
// to maxResolveAttempts with a fixed backoff; anything else fails fast.
func (s *Service) Resolve(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	attempt := 0

	b := retry.WithMaxRetries(maxResolveAttempts-1, retry.NewConstant(s.resolveBackoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			if isConnectivityError(err) {
				log.Printf("auth: resolve user %d failed, attempt %d/%d: %v",
					id, attempt, maxResolveAttempts, err)
				return retry.RetryableError(err)
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		if isConnectivityError(err) {
			return nil, ErrStoreUnavailable
		}
		return nil, err
	}

	return user, nil
}

func isConnectivityError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "server closed the connection unexpectedly") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe")
}
