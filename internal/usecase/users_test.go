package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/auth"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
)

func newUserHarness(t *testing.T) (*memDB, *UserService, *auth.TokenIssuer) {
	t.Helper()
	db := newMemDB()
	tokens := auth.NewTokenIssuer("test-secret", 30*time.Minute)
	svc := NewUserService(db.stores().Users, tokens, &fixedClock{t: testStart}, discardLogger())
	return db, svc, tokens
}

func TestRegisterGuest(t *testing.T) {
	_, svc, _ := newUserHarness(t)

	u, err := svc.Register(context.Background(), RegisterInput{IsGuest: true})
	require.NoError(t, err)
	assert.True(t, u.IsGuest)
	assert.True(t, strings.HasPrefix(u.Username, "Guest_"))
	assert.Len(t, u.Username, len("Guest_")+6)
	assert.Nil(t, u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestRegisterFullAccount(t *testing.T) {
	_, svc, _ := newUserHarness(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.False(t, u.IsGuest)
	require.NotNil(t, u.Email)
	assert.Equal(t, "bob@example.com", *u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "hunter22", u.PasswordHash)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.Register(ctx, RegisterInput{
		Username: "carol", Email: "bob@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	_, svc, tokens := newUserHarness(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	token, got, err := svc.Login(ctx, "bob", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	// Email works as the login identifier too.
	_, _, err = svc.Login(ctx, "bob@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "bob", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "hunter22")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginGuestHasNoPassword(t *testing.T) {
	_, svc, _ := newUserHarness(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{IsGuest: true})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, u.Username, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestGuestUpgrade(t *testing.T) {
	_, svc, _ := newUserHarness(t)
	ctx := context.Background()

	guest, err := svc.Register(ctx, RegisterInput{IsGuest: true})
	require.NoError(t, err)

	_, err = svc.Update(ctx, guest.ID, UpdateInput{Username: "dave"})
	assert.ErrorIs(t, err, domain.ErrGuestUpgradeIncomplete)

	_, err = svc.Update(ctx, guest.ID, UpdateInput{Email: "dave@example.com"})
	assert.ErrorIs(t, err, domain.ErrGuestUpgradeIncomplete)

	upgraded, err := svc.Update(ctx, guest.ID, UpdateInput{
		Username: "dave", Email: "dave@example.com", Password: "letmein7",
	})
	require.NoError(t, err)
	assert.False(t, upgraded.IsGuest)
	assert.Equal(t, "dave", upgraded.Username)
	require.NotNil(t, upgraded.Email)
	assert.Equal(t, "dave@example.com", *upgraded.Email)

	_, _, err = svc.Login(ctx, "dave", "letmein7")
	require.NoError(t, err)
}

func TestRegisteredUserCannotChangeEmail(t *testing.T) {
	_, svc, _ := newUserHarness(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, u.ID, UpdateInput{Email: "new@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailChangeNotAllowed)

	renamed, err := svc.Update(ctx, u.ID, UpdateInput{Username: "robert"})
	require.NoError(t, err)
	assert.Equal(t, "robert", renamed.Username)
	assert.Equal(t, "bob@example.com", *renamed.Email)
}

func TestUpdateRejectsTakenUsername(t *testing.T) {
	_, svc, _ := newUserHarness(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "bob", Password: "x"})
	require.NoError(t, err)
	other, err := svc.Register(ctx, RegisterInput{Username: "carol", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, other.ID, UpdateInput{Username: "bob"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestStatsDerivesWinRates(t *testing.T) {
	db, svc, _ := newUserHarness(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Username: "bob", Password: "x"})
	require.NoError(t, err)

	fastest := 95
	u.PlayedEasy = 4
	u.CompletedEasy = 3
	u.FastestEasy = &fastest
	u.HighScore = 8200
	u.CompletedBoardsCount = 3
	require.NoError(t, db.stores().Users.Save(ctx, u))

	stats, err := svc.Stats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.CompletedBoardsCount)
	assert.Equal(t, 8200, stats.HighScore)
	assert.Equal(t, 3, stats.CompletedByDifficulty[domain.Easy])
	assert.Equal(t, 4, stats.PlayedByDifficulty[domain.Easy])
	assert.InDelta(t, 75.0, stats.WinRateByDifficulty[domain.Easy], 0.001)
	require.NotNil(t, stats.FastestByDifficulty[domain.Easy])
	assert.Equal(t, 95, *stats.FastestByDifficulty[domain.Easy])

	// Unplayed difficulties have no rate at all.
	_, ok := stats.WinRateByDifficulty[domain.Hard]
	assert.False(t, ok)

	_, err = svc.Stats(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
