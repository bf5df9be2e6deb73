package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/auth"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
)

// UserService handles accounts: registration (guest or full), login,
// profile updates, and the stats view.
type UserService struct {
	users  ports.UserStore
	tokens *auth.TokenIssuer
	clock  ports.Clock
	log    *slog.Logger
}

func NewUserService(users ports.UserStore, tokens *auth.TokenIssuer, clock ports.Clock, log *slog.Logger) *UserService {
	return &UserService{users: users, tokens: tokens, clock: clock, log: log}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	IsGuest  bool
}

// Register creates an account. Guests get a generated username and may
// omit email and password; full accounts must be unique on both.
func (u *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if in.IsGuest {
		name, err := u.guestUsername(ctx)
		if err != nil {
			return nil, err
		}
		username = name
	} else {
		if _, err := u.users.GetByUsername(ctx, username); err == nil {
			return nil, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if in.Email != "" {
			if _, err := u.users.GetByLogin(ctx, in.Email); err == nil {
				return nil, domain.ErrEmailTaken
			} else if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
		}
	}

	user := &domain.User{
		Username:  username,
		IsGuest:   in.IsGuest,
		CreatedAt: u.clock.Now(),
	}
	if in.Email != "" {
		email := in.Email
		user.Email = &email
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	u.log.Info("user registered", "user", user.ID, "guest", user.IsGuest)
	return user, nil
}

// Login authenticates by username or email and returns a bearer token.
func (u *UserService) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	user, err := u.users.GetByLogin(ctx, login)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if user.PasswordHash == "" || !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := u.tokens.Issue(user, u.clock.Now())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return u.users.GetByUsername(ctx, username)
}

func (u *UserService) List(ctx context.Context) ([]domain.User, error) {
	return u.users.List(ctx)
}

func (u *UserService) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

type UpdateInput struct {
	Username string
	Email    string
	Password string
}

// Update edits a profile. A guest must supply email and password,
// upgrading to a full account; a registered user may change username
// and password but never email.
func (u *UserService) Update(ctx context.Context, id uint, in UpdateInput) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.IsGuest {
		if in.Email == "" || in.Password == "" {
			return nil, domain.ErrGuestUpgradeIncomplete
		}
		if in.Username != "" && in.Username != user.Username {
			if other, err := u.users.GetByUsername(ctx, in.Username); err == nil && other.ID != id {
				return nil, domain.ErrUsernameTaken
			} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			user.Username = in.Username
		}
		if other, err := u.users.GetByLogin(ctx, in.Email); err == nil && other.ID != id {
			return nil, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		email := in.Email
		user.Email = &email
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		user.IsGuest = false
	} else {
		if in.Email != "" {
			return nil, domain.ErrEmailChangeNotAllowed
		}
		if in.Username != "" && in.Username != user.Username {
			if other, err := u.users.GetByUsername(ctx, in.Username); err == nil && other.ID != id {
				return nil, domain.ErrUsernameTaken
			} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			user.Username = in.Username
		}
		if in.Password != "" {
			hash, err := auth.HashPassword(in.Password)
			if err != nil {
				return nil, err
			}
			user.PasswordHash = hash
		}
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserStats is the aggregate view of a user's play history. Win rates
// are derived on read rather than stored.
type UserStats struct {
	CompletedBoardsCount  int `json:"completed_boards_count"`
	IncompleteBoardsCount int `json:"incomplete_boards_count"`
	HighScore             int `json:"high_score"`
	StreakCount           int `json:"streak_count"`

	CompletedByDifficulty map[domain.Difficulty]int     `json:"completed_by_difficulty"`
	PlayedByDifficulty    map[domain.Difficulty]int     `json:"played_by_difficulty"`
	WinRateByDifficulty   map[domain.Difficulty]float64 `json:"win_rate_by_difficulty"`
	FastestByDifficulty   map[domain.Difficulty]*int    `json:"fastest_by_difficulty"`
}

func (u *UserService) Stats(ctx context.Context, id uint) (*UserStats, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	completed := map[domain.Difficulty]int{
		domain.Easy: user.CompletedEasy, domain.Medium: user.CompletedMedium,
		domain.Hard: user.CompletedHard, domain.Expert: user.CompletedExpert,
	}
	played := map[domain.Difficulty]int{
		domain.Easy: user.PlayedEasy, domain.Medium: user.PlayedMedium,
		domain.Hard: user.PlayedHard, domain.Expert: user.PlayedExpert,
	}
	winRates := make(map[domain.Difficulty]float64, len(played))
	for d, p := range played {
		if p > 0 {
			winRates[d] = float64(completed[d]) / float64(p) * 100
		}
	}
	return &UserStats{
		CompletedBoardsCount:  user.CompletedBoardsCount,
		IncompleteBoardsCount: user.IncompleteBoardsCount,
		HighScore:             user.HighScore,
		StreakCount:           user.StreakCount,
		CompletedByDifficulty: completed,
		PlayedByDifficulty:    played,
		WinRateByDifficulty:   winRates,
		FastestByDifficulty: map[domain.Difficulty]*int{
			domain.Easy: user.FastestEasy, domain.Medium: user.FastestMedium,
			domain.Hard: user.FastestHard, domain.Expert: user.FastestExpert,
		},
	}, nil
}

// guestUsername generates a unique Guest_xxxxxx name.
func (u *UserService) guestUsername(ctx context.Context) (string, error) {
	for i := 0; i < 10; i++ {
		name := "Guest_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
		_, err := u.users.GetByUsername(ctx, name)
		if errors.Is(err, domain.ErrUserNotFound) {
			return name, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not generate unique guest username")
}
