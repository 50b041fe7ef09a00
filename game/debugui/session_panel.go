package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/game"
)

// SessionPanel shows the session state machine, score counters and the
// current drop interval, with buttons to drive state transitions.
type SessionPanel struct {
	Open bool

	showEvents bool
	eventLog   []string
}

const maxEventLog = 64

// Render draws the panel. The snapshot must come from the same session.
func (p *SessionPanel) Render(s *game.Session, snap game.Snapshot) {
	if !p.Open {
		return
	}
	if !imgui.BeginV("Session", &p.Open, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", snap.State))
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Drop interval: %s", snap.DropInterval))
	if snap.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d) r%d", snap.Active.Type, snap.Active.X, snap.Active.Y, snap.Active.Rotation))
	}
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next))

	imgui.Separator()

	switch snap.State {
	case game.StateStart, game.StateGameOver:
		if imgui.Button("Start") {
			s.Start()
		}
	case game.StatePlaying:
		if imgui.Button("Pause") {
			s.TogglePause()
		}
	case game.StatePaused:
		if imgui.Button("Resume") {
			s.TogglePause()
		}
	}

	imgui.Separator()
	imgui.Checkbox("Capture events", &p.showEvents)
	if p.showEvents {
		for _, ev := range s.PollEvents() {
			p.eventLog = append(p.eventLog, describeEvent(ev))
		}
		if len(p.eventLog) > maxEventLog {
			p.eventLog = p.eventLog[len(p.eventLog)-maxEventLog:]
		}
		if imgui.TreeNodeStr(fmt.Sprintf("Events (%d)", len(p.eventLog))) {
			for i := len(p.eventLog) - 1; i >= 0; i-- {
				imgui.BulletText(p.eventLog[i])
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func describeEvent(ev game.Event) string {
	switch e := ev.(type) {
	case game.PieceSpawned:
		return fmt.Sprintf("spawned %s (next %s)", e.Type, e.Next)
	case game.PieceMoved:
		if e.Horizontal {
			return "moved"
		}
		return "soft drop"
	case game.PieceRotated:
		return "rotated"
	case game.HardDropped:
		return fmt.Sprintf("hard drop %d cells", e.Cells)
	case game.PieceLocked:
		return fmt.Sprintf("locked %s", e.Type)
	case game.LinesCleared:
		return fmt.Sprintf("cleared %d (+%d)", e.Count, e.Points)
	case game.LevelUp:
		return fmt.Sprintf("level %d", e.Level)
	case game.GameOver:
		if e.NewHighScore {
			return fmt.Sprintf("game over, new high score %d", e.Score)
		}
		return fmt.Sprintf("game over, score %d", e.Score)
	default:
		return fmt.Sprintf("%T", ev)
	}
}
