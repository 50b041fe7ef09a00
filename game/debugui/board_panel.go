package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetra/game"
)

// BoardPanel draws the playfield as a grid of filled rects, including the
// active piece and its ghost landing position.
type BoardPanel struct {
	Open     bool
	CellSize float32
}

// NewBoardPanel returns a panel with default cell sizing.
func NewBoardPanel() BoardPanel {
	return BoardPanel{Open: true, CellSize: 14}
}

var pieceColors = [game.NumPieceTypes]imgui.Vec4{
	game.PieceI: imgui.NewVec4(0.2, 0.8, 0.8, 1),
	game.PieceO: imgui.NewVec4(0.9, 0.8, 0.2, 1),
	game.PieceT: imgui.NewVec4(0.7, 0.3, 0.8, 1),
	game.PieceS: imgui.NewVec4(0.3, 0.8, 0.3, 1),
	game.PieceZ: imgui.NewVec4(0.9, 0.3, 0.3, 1),
	game.PieceJ: imgui.NewVec4(0.3, 0.4, 0.9, 1),
	game.PieceL: imgui.NewVec4(0.9, 0.6, 0.2, 1),
}

var emptyColor = imgui.NewVec4(0.15, 0.15, 0.18, 1)

// Render draws the panel from a session snapshot.
func (p *BoardPanel) Render(snap game.Snapshot) {
	if !p.Open {
		return
	}
	if !imgui.BeginV("Board", &p.Open, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := p.CellSize

	for y := 0; y < game.BoardHeight; y++ {
		for x := 0; x < game.BoardWidth; x++ {
			color := emptyColor
			if t, ok := snap.Cells[y][x].Piece(); ok {
				color = pieceColors[t]
			}
			p.drawCell(drawList, origin, x, y, color)
		}
	}

	if active := snap.Active; active != nil {
		ghost := pieceColors[active.Type]
		ghost.W = 0.35
		for i := 0; i < len(active.Shape); i++ {
			for j := 0; j < len(active.Shape[i]); j++ {
				if !active.Shape[i][j] {
					continue
				}
				if gy := active.GhostY + i; gy >= 0 && gy > active.Y+i {
					p.drawCell(drawList, origin, active.X+j, gy, ghost)
				}
				if y := active.Y + i; y >= 0 {
					p.drawCell(drawList, origin, active.X+j, y, pieceColors[active.Type])
				}
			}
		}
	}

	// Reserve the grid area so following widgets land below it.
	imgui.Dummy(imgui.NewVec2(float32(game.BoardWidth)*size, float32(game.BoardHeight)*size))

	imgui.End()
}

func (p *BoardPanel) drawCell(drawList *imgui.DrawList, origin imgui.Vec2, x, y int, color imgui.Vec4) {
	size := p.CellSize
	min := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
	max := imgui.NewVec2(min.X+size-1, min.Y+size-1)
	drawList.AddRectFilled(min, max, imgui.ColorU32Vec4(color))
}
