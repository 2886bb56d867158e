package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyNames maps physical keys to the identifiers core.KeyMap understands.
// A slice keeps same-frame presses in a stable order.
var keyNames = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "+"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "-"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "q"},
}

// justPressed returns the names of keys pressed since the previous frame.
func justPressed() []string {
	var names []string
	for _, k := range keyNames {
		if inpututil.IsKeyJustPressed(k.key) {
			names = append(names, k.name)
		}
	}
	return names
}
