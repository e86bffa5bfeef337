package dmg

import (
	"image"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// Window is the pixelgl-backed presentation surface: a 160x144 logical
// canvas scaled up for display, implementing FrameSink for the PPU and
// polling host keyboard/quit events for the frame loop.
type Window struct {
	rgba   *image.RGBA
	window *pixelgl.Window
	matrix pixel.Matrix

	joypad *Joypad
}

const (
	displayScale  float64 = 4 // integer scale factor for the 160x144 canvas
	windowPosX    float64 = 400
	windowPosY    float64 = 200
)

// NewWindow creates the host window and wires it to joypad for input.
func NewWindow(joypad *Joypad) (*Window, error) {
	rect := image.Rect(0, 0, ScreenWidth, ScreenHeight)
	rgba := image.NewRGBA(rect)

	w := ScreenWidth * displayScale
	h := ScreenHeight * displayScale

	config := pixelgl.WindowConfig{
		Title:    "DMG Core",
		Bounds:   pixel.R(0, 0, float64(w), float64(h)),
		Position: pixel.V(windowPosX, windowPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		return nil, err
	}

	pic := pixel.PictureDataFromImage(rgba)
	matrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(displayScale))
	matrix = matrix.Scaled(pic.Bounds().Center().Scaled(displayScale), displayScale)

	return &Window{
		rgba:   rgba,
		window: window,
		matrix: matrix,
		joypad: joypad,
	}, nil
}

// SetPixel writes a single RGBA pixel into the logical canvas.
func (w *Window) SetPixel(x, y int, c color.RGBA) {
	w.rgba.SetRGBA(x, y, c)
}

// Present clears the window to black, draws the current canvas, and flips.
func (w *Window) Present() {
	w.window.Clear(colornames.Black)

	pic := pixel.PictureDataFromImage(w.rgba)
	sprite := pixel.NewSprite(pic, pic.Bounds())
	sprite.Draw(w.window, w.matrix)

	w.window.Update()
}

// PollEvents drains pending key and quit events into the joypad, and
// reports whether a quit event (the window being closed) was seen.
func (w *Window) PollEvents() bool {
	for key, btn := range runeButtons {
		if w.window.JustPressed(btn) {
			w.joypad.KeyDown(key)
		}
		if w.window.JustReleased(btn) {
			w.joypad.KeyUp(key)
		}
	}

	return w.window.Closed()
}

// runeButtons maps the fixed host-key identifiers onto pixelgl buttons.
var runeButtons = map[rune]pixelgl.Button{
	'1': pixelgl.Key1,
	'2': pixelgl.Key2,
	'3': pixelgl.Key3,
	'4': pixelgl.Key4,
	'q': pixelgl.KeyQ,
	'w': pixelgl.KeyW,
	'e': pixelgl.KeyE,
	'r': pixelgl.KeyR,
	'a': pixelgl.KeyA,
	's': pixelgl.KeyS,
	'd': pixelgl.KeyD,
	'f': pixelgl.KeyF,
	'z': pixelgl.KeyZ,
	'x': pixelgl.KeyX,
	'c': pixelgl.KeyC,
	'v': pixelgl.KeyV,
}
