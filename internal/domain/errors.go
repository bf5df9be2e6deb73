package domain

import "errors"

// Typed failures surfaced by the game core and its collaborators.
// Handlers map these onto HTTP statuses; nothing retries automatically.
var (
	// ErrInvalidMove rejects a placement that violates row, column, or
	// box uniqueness. No session state changes on rejection.
	ErrInvalidMove = errors.New("invalid move: violates sudoku rules")

	// ErrNoHintsAvailable means the board has no empty cell to reveal.
	ErrNoHintsAvailable = errors.New("no hints available: board is full")

	ErrSessionNotFound = errors.New("game session not found")
	ErrBoardNotFound   = errors.New("board not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrNotAuthorized      = errors.New("not authorized")

	// ErrGuestUpgradeIncomplete rejects a guest account update that is
	// missing the email or password needed to become a full account.
	ErrGuestUpgradeIncomplete = errors.New("guests must provide email and password to update")

	// ErrEmailChangeNotAllowed blocks email changes on registered accounts.
	ErrEmailChangeNotAllowed = errors.New("registered users cannot change their email")
)
