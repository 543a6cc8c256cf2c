package db

import (
	"context"
	"log/slog"
	"time"
)

// cutMarker is the part of TreeRepository the persister needs.
type cutMarker interface {
	MarkCut(ctx context.Context, treeID int64) error
}

// CutPersister writes cut trees to the database off the simulation goroutine.
type CutPersister struct {
	repo    cutMarker
	timeout time.Duration
}

// NewCutPersister creates a persister with a per-write timeout.
func NewCutPersister(repo cutMarker, timeout time.Duration) *CutPersister {
	return &CutPersister{repo: repo, timeout: timeout}
}

// Run drains events until ctx is cancelled or events is closed.
// Write failures are logged; the simulation keeps its own state.
func (p *CutPersister) Run(ctx context.Context, events <-chan int64) error {
	for {
		select {
		case <-ctx.Done():
			p.drain(ctx, events)
			return nil

		case id, ok := <-events:
			if !ok {
				return nil
			}
			p.persist(ctx, id)
		}
	}
}

// drain writes events already queued at shutdown so cut trees do not grow
// back on restart. It never waits for new events.
func (p *CutPersister) drain(ctx context.Context, events <-chan int64) {
	for {
		select {
		case id, ok := <-events:
			if !ok {
				return
			}
			p.persist(ctx, id)
		default:
			return
		}
	}
}

// persist writes one cut. Shutdown does not abort the write; the timeout bounds it.
func (p *CutPersister) persist(ctx context.Context, treeID int64) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.repo.MarkCut(wctx, treeID); err != nil {
		slog.Error("persisting cut tree", "treeID", treeID, "error", err)
		return
	}
	slog.Debug("cut tree persisted", "treeID", treeID)
}
