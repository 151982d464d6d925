// Package events carries the gameplay facts the games report and the
// trigger rules consume. Dispatch is synchronous and single-threaded: a
// published fact is fully handled before Publish returns.
package events

import "time"

// Fact is a typed gameplay observation. Games publish facts; they never
// call the discovery engine directly.
type Fact interface{ fact() }

// GameStarted is reported once per game session.
type GameStarted struct {
	Game  string
	Genre string
}

// ScoreReported carries a score delta as it happens. Deltas are summed into
// the cumulative total; there is no deduplication at this level.
type ScoreReported struct {
	Game  string
	Delta int
}

// GameOver is reported once when a session ends.
type GameOver struct {
	Game     string
	Genre    string
	Score    int
	Won      bool
	Perfect  bool
	Duration time.Duration
}

// QuestionAnswered is reported per trivia answer.
type QuestionAnswered struct {
	Correct bool
}

// KeyPressed is the global key stream feeding sequence detectors.
type KeyPressed struct {
	Key string
}

// DailyVisit marks a session start for streak accounting. Reported once
// per launch.
type DailyVisit struct {
	Now time.Time
}

func (GameStarted) fact()      {}
func (ScoreReported) fact()    {}
func (GameOver) fact()         {}
func (QuestionAnswered) fact() {}
func (KeyPressed) fact()       {}
func (DailyVisit) fact()       {}
