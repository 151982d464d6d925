package engine

import (
	"database/sql"
	"time"

	"github.com/CR-AudioViz-AI/crav-games/internal/catalog"
	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

// Service is the discovery engine: the only writer of card progress. It
// holds the validated catalog, the persistence repos and the notification
// surface for the presentation layer.
type Service struct {
	db       *sql.DB
	catalog  *catalog.Catalog
	progress *storage.ProgressRepo
	counters *storage.CounterRepo
	scores   *storage.ScoreRepo
	notifier *Notifier

	now func() time.Time
}

func NewService(db *sql.DB, cat *catalog.Catalog) *Service {
	return &Service{
		db:       db,
		catalog:  cat,
		progress: storage.NewProgressRepo(db),
		counters: storage.NewCounterRepo(db),
		scores:   storage.NewScoreRepo(db),
		notifier: NewNotifier(),
		now:      time.Now,
	}
}

func (s *Service) Catalog() *catalog.Catalog          { return s.catalog }
func (s *Service) ProgressRepo() *storage.ProgressRepo { return s.progress }
func (s *Service) CounterRepo() *storage.CounterRepo   { return s.counters }
func (s *Service) ScoreRepo() *storage.ScoreRepo       { return s.scores }
func (s *Service) Notifier() *Notifier                 { return s.notifier }

// Close releases the notifier's pending expiry timer. The database handle
// is owned by the caller.
func (s *Service) Close() {
	s.notifier.Close()
}
