package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/game"
)

// StatsPanel shows session statistics alongside a frame time graph.
type StatsPanel struct {
	Open bool

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(historyFrames int) StatsPanel {
	return StatsPanel{
		Open:          true,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *StatsPanel) Render(stats game.SessionStats, deltaTime float32) {
	if !ps.Open {
		return
	}
	if !imgui.BeginV("Stats", &ps.Open, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	imgui.Text(fmt.Sprintf("Pieces Spawned: %d", stats.TotalSpawned()))
	imgui.Text(fmt.Sprintf("Pieces Locked: %d", stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))
	imgui.Text(fmt.Sprintf("Tetrises: %d", stats.Tetrises))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Piece Distribution") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceDistTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Piece")
			imgui.TableSetupColumn("Spawned")
			imgui.TableSetupColumn("Share")
			imgui.TableHeadersRow()

			total := stats.TotalSpawned()
			for t := game.PieceType(0); t < game.NumPieceTypes; t++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(t.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.PiecesSpawned[t]))
				imgui.TableNextColumn()
				if total > 0 {
					imgui.Text(fmt.Sprintf("%.1f%%", 100*float64(stats.PiecesSpawned[t])/float64(total)))
				} else {
					imgui.Text("-")
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// DeltaTime returns the seconds elapsed since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
