package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zenstudio/sessions-client/internal/core/domain"
	"github.com/zenstudio/sessions-client/internal/core/ports"
)

// ParticipationView is the viewer-specific membership status derived from a
// confirmed session fetch. It is never flipped optimistically: it only
// changes when the coordinator commits a fresh server response.
type ParticipationView struct {
	Session       domain.Session
	ViewerID      int64
	Participating bool
}

// ParticipationCoordinator executes the join/leave workflow and keeps the
// displayed view consistent with server truth. Each toggle or load is stamped
// with a per-session issuance number; a refetch result is committed only if no
// newer operation was issued for that session in the meantime, so a late
// response after view teardown or a follow-up toggle is safely discarded
// (last started wins).
type ParticipationCoordinator struct {
	api    ports.SessionAPI
	logger zerolog.Logger

	mu    sync.Mutex
	seq   map[int64]uint64
	views map[int64]ParticipationView
}

func NewParticipationCoordinator(api ports.SessionAPI, logger zerolog.Logger) *ParticipationCoordinator {
	return &ParticipationCoordinator{
		api:    api,
		logger: logger,
		seq:    make(map[int64]uint64),
		views:  make(map[int64]ParticipationView),
	}
}

// Load fetches the session and computes the viewer's membership. Called on
// view entry and after every confirmed mutation.
func (c *ParticipationCoordinator) Load(ctx context.Context, sessionID, viewerID int64) (ParticipationView, error) {
	n := c.begin(sessionID)
	return c.refresh(ctx, n, sessionID, viewerID)
}

// Join calls the participate endpoint and, on success, re-fetches the session
// to recompute membership. On any rejection the last confirmed view is
// returned untouched alongside the error.
func (c *ParticipationCoordinator) Join(ctx context.Context, sessionID, viewerID int64) (ParticipationView, error) {
	n := c.begin(sessionID)
	if err := c.api.Participate(ctx, sessionID, viewerID); err != nil {
		view, _ := c.View(sessionID)
		return view, err
	}
	return c.refresh(ctx, n, sessionID, viewerID)
}

// Leave is the symmetric counterpart of Join using the unparticipate endpoint.
func (c *ParticipationCoordinator) Leave(ctx context.Context, sessionID, viewerID int64) (ParticipationView, error) {
	n := c.begin(sessionID)
	if err := c.api.Unparticipate(ctx, sessionID, viewerID); err != nil {
		view, _ := c.View(sessionID)
		return view, err
	}
	return c.refresh(ctx, n, sessionID, viewerID)
}

// View returns the last confirmed view for a session, if one exists.
func (c *ParticipationCoordinator) View(sessionID int64) (ParticipationView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	view, ok := c.views[sessionID]
	return view, ok
}

// Forget drops the confirmed view for a session, e.g. on view teardown.
func (c *ParticipationCoordinator) Forget(sessionID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, sessionID)
}

// begin stamps a new operation for the session and returns its issuance
// number. Any previously issued operation becomes stale immediately.
func (c *ParticipationCoordinator) begin(sessionID int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq[sessionID]++
	return c.seq[sessionID]
}

func (c *ParticipationCoordinator) refresh(ctx context.Context, n uint64, sessionID, viewerID int64) (ParticipationView, error) {
	session, err := c.api.GetDetail(ctx, sessionID)
	if err != nil {
		view, _ := c.View(sessionID)
		return view, err
	}

	view := ParticipationView{
		Session:       *session,
		ViewerID:      viewerID,
		Participating: session.HasParticipant(viewerID),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq[sessionID] != n {
		// A newer operation was issued while this fetch was in flight; its
		// result supersedes ours.
		c.logger.Debug().
			Int64("session_id", sessionID).
			Uint64("issued", n).
			Uint64("current", c.seq[sessionID]).
			Msg("discarding stale refetch")
		return c.views[sessionID], nil
	}
	c.views[sessionID] = view
	return view, nil
}
