// Package ebiten bridges the debug overlay to the Ebiten game engine
// through cimgui-go's ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend embeds the cimgui-go ebiten backend. Hosts call BeginFrame
// and EndFrame around Overlay.Render in Update, and Draw after their own
// rendering so the panels sit on top.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
