package ebiten_test

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/game/debugui"
	debugui_ebiten "github.com/plus3/tetra/game/debugui/ebiten"
)

// Game implements ebiten.Game and renders the debug overlay on top of a
// running session.
type Game struct {
	session      *game.Session
	overlay      *debugui.Overlay
	frameTimer   *debugui.FrameTimer
	imguiBackend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.session.Tick(time.Now())

	g.imguiBackend.BeginFrame()
	g.overlay.Render(g.frameTimer.DeltaTime())
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Session Debug Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	session := game.NewSession(nil, nil)
	session.Start()

	g := &Game{
		session:    session,
		overlay:    debugui.NewOverlay(session),
		frameTimer: debugui.NewFrameTimer(),
		imguiBackend: debugui_ebiten.ImguiBackend{
			EbitenBackend: imguiBackend,
		},
	}

	// Run the game
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
