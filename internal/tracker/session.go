package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

const (
	quarterMasterPlays = 25
	initiateDistinct   = 5
	speedWinLimit      = 30 * time.Second
)

var playTimeThresholds = []struct {
	Hours  int
	CardID string
}{
	{1, "time-001"},
	{5, "time-002"},
	{24, "time-003"},
	{100, "time-004"},
}

var genreWinRules = map[string]struct {
	Wins   int
	CardID string
}{
	"puzzle": {10, "genre-001"},
	"arcade": {10, "genre-002"},
	"card":   {25, "genre-003"},
	"word":   {15, "genre-004"},
}

// HandleGameStarted counts plays and distinct games.
func (t *Tracker) HandleGameStarted(ctx context.Context, f events.GameStarted) error {
	plays, err := t.counters.AddInt(ctx, storage.CounterGamesPlayed, 1)
	if err != nil {
		return err
	}
	if plays == 1 {
		if err := t.discover(ctx, "player-001", "first-game"); err != nil {
			return err
		}
	}
	if plays >= quarterMasterPlays {
		if err := t.discover(ctx, "player-003", "quarter-master"); err != nil {
			return err
		}
	}

	if f.Game == "" {
		return nil
	}
	if err := t.counters.SetInt(ctx, storage.PrefixPlayedGame+f.Game, 1); err != nil {
		return err
	}
	distinct, err := t.counters.CountPrefix(ctx, storage.PrefixPlayedGame)
	if err != nil {
		return err
	}
	if distinct >= initiateDistinct {
		return t.discover(ctx, "player-002", "arcade-initiate")
	}
	return nil
}

// HandleGameOver accumulates play time, genre wins and the local
// leaderboard, and evaluates the per-run secrets.
func (t *Tracker) HandleGameOver(ctx context.Context, f events.GameOver) error {
	if f.Duration > 0 {
		secs, err := t.counters.AddInt(ctx, storage.CounterPlaySeconds, int(f.Duration.Seconds()))
		if err != nil {
			return err
		}
		for _, th := range playTimeThresholds {
			if secs >= th.Hours*3600 {
				if err := t.discover(ctx, th.CardID, fmt.Sprintf("time-%dh", th.Hours)); err != nil {
					return err
				}
			}
		}
	}

	if f.Perfect {
		if err := t.discover(ctx, "score-004", "perfect-game"); err != nil {
			return err
		}
	}
	if f.Won && f.Duration > 0 && f.Duration < speedWinLimit {
		if err := t.discover(ctx, "secret-004", "speed-run"); err != nil {
			return err
		}
	}

	if f.Won && f.Genre != "" {
		wins, err := t.counters.AddInt(ctx, storage.PrefixGenreWins+f.Genre, 1)
		if err != nil {
			return err
		}
		if rule, ok := genreWinRules[f.Genre]; ok && wins >= rule.Wins {
			if err := t.discover(ctx, rule.CardID, "genre-"+f.Genre); err != nil {
				return err
			}
		}
	}

	return t.recordHighScore(ctx, f)
}

// recordHighScore appends the run to the per-game leaderboard. Taking the
// top spot from an existing entry earns Leaderboard Legend; an empty board
// has no #1 to take.
func (t *Tracker) recordHighScore(ctx context.Context, f events.GameOver) error {
	if f.Game == "" || f.Score <= 0 {
		return nil
	}
	best, had, err := t.scores.Best(ctx, f.Game)
	if err != nil {
		return err
	}
	if _, err := t.scores.Insert(ctx, f.Game, f.Score, time.Now()); err != nil {
		return err
	}
	if had && f.Score > best {
		return t.discover(ctx, "score-003", "leaderboard-top")
	}
	return nil
}

// HandleQuestionAnswered counts correct trivia answers toward Trivia Titan.
func (t *Tracker) HandleQuestionAnswered(ctx context.Context, f events.QuestionAnswered) error {
	if !f.Correct {
		return nil
	}
	correct, err := t.counters.AddInt(ctx, storage.CounterTriviaCorrect, 1)
	if err != nil {
		return err
	}
	if correct >= 100 {
		return t.discover(ctx, "genre-005", "trivia-titan")
	}
	return nil
}
