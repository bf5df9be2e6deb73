// Package httpadapter exposes the game services over HTTP with gin.
package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/auth"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/usecase"
)

type Handler struct {
	users  *usecase.UserService
	boards *usecase.BoardService
	games  *usecase.GameService
	tokens *auth.TokenIssuer
	log    *slog.Logger
}

func New(users *usecase.UserService, boards *usecase.BoardService, games *usecase.GameService, tokens *auth.TokenIssuer, log *slog.Logger) *Handler {
	return &Handler{users: users, boards: boards, games: games, tokens: tokens, log: log}
}

// statusFor maps typed domain failures onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidMove),
		errors.Is(err, domain.ErrNoHintsAvailable),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrGuestUpgradeIncomplete),
		errors.Is(err, domain.ErrEmailChangeNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrBoardNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortErr(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
