// Package debugui provides immediate-mode inspection panels for a running
// game session using Dear ImGui. Panels pull everything they show from
// Session snapshots, so attaching the overlay never changes simulation
// behavior beyond the buttons the user presses.
package debugui

import (
	"github.com/plus3/tetra/game"
)

// Overlay bundles the standard debug panels for one session.
type Overlay struct {
	session *game.Session

	Session SessionPanel
	Board   BoardPanel
	Stats   StatsPanel
}

// NewOverlay creates an overlay with all panels enabled.
func NewOverlay(session *game.Session) *Overlay {
	return &Overlay{
		session: session,
		Session: SessionPanel{Open: true},
		Board:   NewBoardPanel(),
		Stats:   NewStatsPanel(120),
	}
}

// Render draws every enabled panel. Call between the ImGui backend's
// BeginFrame and EndFrame, once per frame, with the frame delta time in
// seconds.
func (o *Overlay) Render(dt float32) {
	snap := o.session.Snapshot()
	o.Session.Render(o.session, snap)
	o.Board.Render(snap)
	o.Stats.Render(o.session.Stats(), dt)
}
