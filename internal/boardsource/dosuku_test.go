package boardsource

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/infrastructure/storage"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/validator"
)

var fetchedPuzzle = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var fetchedSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func dosukuBody(puzzle, solution domain.Grid, difficulty string) []byte {
	body := map[string]any{
		"newboard": map[string]any{
			"grids": []map[string]any{{
				"value":      puzzle,
				"solution":   solution,
				"difficulty": difficulty,
			}},
		},
	}
	buf, _ := json.Marshal(body)
	return buf
}

func fixtureServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testBoardStore(t *testing.T) ports.BoardStore {
	t.Helper()
	db, err := storage.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	return storage.NewBoardStore(db)
}

func quietPopulator(boards ports.BoardStore, srvURL string) *Populator {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewPopulator(NewClient(srvURL), boards, validator.New(), log)
	p.maxIdleFetches = 3
	return p
}

func TestClientFetch(t *testing.T) {
	srv := fixtureServer(t, dosukuBody(fetchedPuzzle, fetchedSolution, "Medium"))

	f, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fetchedPuzzle, f.Puzzle)
	assert.Equal(t, fetchedSolution, f.Solution)
	assert.Equal(t, domain.Medium, f.Difficulty)
}

func TestClientFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.ErrorContains(t, err, "unexpected status")
}

func TestClientFetchEmptyResponse(t *testing.T) {
	srv := fixtureServer(t, []byte(`{"newboard":{"grids":[]}}`))

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.ErrorContains(t, err, "empty response")
}

func TestPopulateInsertsUntilTarget(t *testing.T) {
	srv := fixtureServer(t, dosukuBody(fetchedPuzzle, fetchedSolution, "Medium"))
	boards := testBoardStore(t)
	p := quietPopulator(boards, srv.URL)
	ctx := context.Background()

	err := p.Populate(ctx, map[domain.Difficulty]int{domain.Medium: 1})
	require.NoError(t, err)

	n, err := boards.Count(ctx, domain.Medium)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// The API keeps serving the same board, so a higher target can only
	// hit the idle limit; the duplicate is never inserted twice.
	err = p.Populate(ctx, map[domain.Difficulty]int{domain.Medium: 2})
	assert.ErrorContains(t, err, "no new boards")

	n, err = boards.Count(ctx, domain.Medium)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPopulateRejectsBrokenSolution(t *testing.T) {
	holed := fetchedSolution
	holed[4][4] = 0
	srv := fixtureServer(t, dosukuBody(fetchedPuzzle, holed, "Medium"))
	boards := testBoardStore(t)
	p := quietPopulator(boards, srv.URL)
	ctx := context.Background()

	err := p.Populate(ctx, map[domain.Difficulty]int{domain.Medium: 1})
	assert.ErrorContains(t, err, "no new boards")

	n, err := boards.Count(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPopulateRejectsContradictingGiven(t *testing.T) {
	wrong := fetchedPuzzle
	wrong[0][0] = 9 // solution says 5
	srv := fixtureServer(t, dosukuBody(wrong, fetchedSolution, "Medium"))
	boards := testBoardStore(t)
	p := quietPopulator(boards, srv.URL)

	err := p.Populate(context.Background(), map[domain.Difficulty]int{domain.Medium: 1})
	assert.ErrorContains(t, err, "no new boards")
}

func TestPopulateSkipsUnwantedDifficulty(t *testing.T) {
	srv := fixtureServer(t, dosukuBody(fetchedPuzzle, fetchedSolution, "Easy"))
	boards := testBoardStore(t)
	p := quietPopulator(boards, srv.URL)

	err := p.Populate(context.Background(), map[domain.Difficulty]int{domain.Expert: 1})
	assert.ErrorContains(t, err, "no new boards")
}

func TestPopulateStopsOnCancel(t *testing.T) {
	srv := fixtureServer(t, dosukuBody(fetchedPuzzle, fetchedSolution, "Medium"))
	boards := testBoardStore(t)
	p := quietPopulator(boards, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Populate(ctx, map[domain.Difficulty]int{domain.Medium: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
