package root

import (
	"context"
	"fmt"

	"github.com/CR-AudioViz-AI/crav-games/internal/catalog"
	"github.com/CR-AudioViz-AI/crav-games/internal/config"
	"github.com/CR-AudioViz-AI/crav-games/internal/engine"
	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
	"github.com/CR-AudioViz-AI/crav-games/internal/tracker"
)

// session bundles everything a command needs: the service over an open
// database, the trigger rules attached to a fact bus, and the user config.
type session struct {
	cfg     *config.Config
	svc     *engine.Service
	tracker *tracker.Tracker
	bus     *events.Bus
}

func openSession(ctx context.Context) (*session, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load card catalog: %w", err)
	}

	path, err := cfg.ResolveDBPath(dbFlag)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	svc := engine.NewService(db, cat)
	tr := tracker.New(svc, nil)
	bus := events.NewBus()
	tr.Attach(ctx, bus)

	cleanup := func() {
		svc.Close()
		_ = db.Close()
	}
	return &session{cfg: cfg, svc: svc, tracker: tr, bus: bus}, cleanup, nil
}
