// Package boardsource populates the board catalogue from the Dosuku
// puzzle API. Fetched boards are sanity-checked structurally before
// insert; their solutions are otherwise trusted input.
package boardsource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/ports"
)

// Client fetches single boards from the Dosuku API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetched is one puzzle/solution pair as delivered by the API.
type Fetched struct {
	Puzzle     domain.Grid
	Solution   domain.Grid
	Difficulty domain.Difficulty
}

type dosukuResponse struct {
	NewBoard struct {
		Grids []struct {
			Value      [9][9]uint8 `json:"value"`
			Solution   [9][9]uint8 `json:"solution"`
			Difficulty string      `json:"difficulty"`
		} `json:"grids"`
	} `json:"newboard"`
}

// Fetch retrieves one board.
func (c *Client) Fetch(ctx context.Context) (*Fetched, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("board api: unexpected status %d", resp.StatusCode)
	}
	var body dosukuResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("board api: decode: %w", err)
	}
	if len(body.NewBoard.Grids) == 0 {
		return nil, fmt.Errorf("board api: empty response")
	}
	g := body.NewBoard.Grids[0]
	return &Fetched{
		Puzzle:     g.Value,
		Solution:   g.Solution,
		Difficulty: domain.ParseDifficulty(strings.ToLower(g.Difficulty)),
	}, nil
}

// Populator fills the board store until each difficulty reaches its
// target count.
type Populator struct {
	client    *Client
	boards    ports.BoardStore
	validator ports.Validator
	log       *slog.Logger

	// maxIdleFetches bounds consecutive fetches that add nothing
	// (duplicates, unwanted difficulties, API hiccups).
	maxIdleFetches int
}

func NewPopulator(client *Client, boards ports.BoardStore, v ports.Validator, log *slog.Logger) *Populator {
	return &Populator{client: client, boards: boards, validator: v, log: log, maxIdleFetches: 100}
}

// Populate fetches boards until every difficulty in targets holds at
// least its target count, skipping duplicates and rejecting boards
// whose solution fails structural checks.
func (p *Populator) Populate(ctx context.Context, targets map[domain.Difficulty]int) error {
	counts := make(map[domain.Difficulty]int64, len(targets))
	for d := range targets {
		n, err := p.boards.Count(ctx, d)
		if err != nil {
			return err
		}
		counts[d] = n
	}

	idle := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done := true
		for d, want := range targets {
			if counts[d] < int64(want) {
				done = false
				break
			}
		}
		if done {
			p.log.Info("board targets reached", "counts", fmt.Sprint(counts))
			return nil
		}
		if idle >= p.maxIdleFetches {
			return fmt.Errorf("no new boards after %d fetches", p.maxIdleFetches)
		}

		f, err := p.client.Fetch(ctx)
		if err != nil {
			p.log.Warn("fetch failed", "err", err)
			idle++
			continue
		}
		want, ok := targets[f.Difficulty]
		if !ok || counts[f.Difficulty] >= int64(want) {
			idle++
			continue
		}
		if err := p.check(ctx, f); err != nil {
			p.log.Warn("rejected board", "err", err)
			idle++
			continue
		}
		exists, err := p.boards.Exists(ctx, f.Puzzle, f.Solution)
		if err != nil {
			return err
		}
		if exists {
			idle++
			continue
		}
		if err := p.boards.Create(ctx, &domain.Board{
			Puzzle:     f.Puzzle,
			Solution:   f.Solution,
			Difficulty: f.Difficulty,
		}); err != nil {
			return err
		}
		counts[f.Difficulty]++
		idle = 0
		p.log.Info("board added", "difficulty", f.Difficulty, "count", counts[f.Difficulty])
	}
}

// check verifies the pair is playable: full conflict-free solution,
// and every puzzle given agrees with it.
func (p *Populator) check(ctx context.Context, f *Fetched) error {
	if !f.Solution.Full() {
		return fmt.Errorf("solution has empty cells")
	}
	ok, conflicts, err := p.validator.Validate(ctx, f.Solution)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("solution has %d conflicts", len(conflicts))
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := f.Puzzle[r][c]; v != 0 && v != f.Solution[r][c] {
				return fmt.Errorf("puzzle given at (%d,%d) contradicts solution", r, c)
			}
		}
	}
	return nil
}
