// Command paxdemo exercises the rasterizer end to end: shapes, text and
// a small GUI tree drawn into one buffer, then either streamed live to
// an SDL2 window or snapshotted to a BMP file.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"os"
	"time"

	"golang.org/x/image/bmp"

	"github.com/paxgfx/pax/internal/pcolor"
	"github.com/paxgfx/pax/internal/pixfmt"
	"github.com/paxgfx/pax/internal/platform/sdl2"
	"github.com/paxgfx/pax/pax"
	"github.com/paxgfx/pax/pax/gui"
	"github.com/paxgfx/pax/pax/paxlog"
	"github.com/paxgfx/pax/pax/text"
)

func main() {
	window := flag.Bool("window", false, "open a live SDL2 window instead of writing a snapshot")
	out := flag.String("out", "paxdemo.bmp", "bmp file to write when -window is not set")
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	if *verbose {
		paxlog.EnableStderr()
	}

	const w, h = 800, 480
	buf := pax.NewBuffer(w, h, pixfmt.ARGB8888, nil)
	drawScene(buf)

	if *window {
		runWindow(buf)
		return
	}
	if err := writeBMP(buf, *out); err != nil {
		paxlog.Logger.Error().Err(err).Msg("writing snapshot failed")
		os.Exit(1)
	}
}

func drawScene(buf *pax.Buffer) {
	buf.SimpleRect(pcolor.RGB(0x20, 0x20, 0x30), 0, 0, float64(buf.Width), float64(buf.Height))

	buf.SimpleTriangle(pcolor.RGB(0xe0, 0x60, 0x40), 40, 40, 200, 60, 120, 200)
	buf.SimpleCircle(pcolor.RGB(0x40, 0xc0, 0xe0), 320, 120, 60)
	buf.SimpleRoundRect(pcolor.RGB(0x60, 0xc0, 0x60), 420, 60, 180, 120, 18)

	theme := gui.DefaultTheme()
	text.DrawString(buf, theme.Font, pcolor.White, 40, 260, "pax software rasterizer", text.AlignBegin, false)

	root := gui.NewGrid(3, 1)
	root.Pos = gui.Point{X: 40, Y: 320}
	root.Flags |= gui.FillCell
	root.Size = gui.Point{X: 600, Y: 60}
	root.SetCell(0, 0, gui.NewButton("OK"))
	root.SetCell(1, 0, gui.NewButton("Cancel"))
	root.SetCell(2, 0, gui.NewDropdown([]string{"low", "medium", "high"}))

	gui.CalcLayout(root, theme)
	gui.Draw(buf, root, theme)
}

func runWindow(buf *pax.Buffer) {
	win, err := sdl2.Open("pax demo", buf.Width, buf.Height)
	if err != nil {
		paxlog.Logger.Error().Err(err).Msg("opening sdl2 window failed")
		os.Exit(1)
	}
	defer win.Close()

	for {
		if err := win.Present(buf); err != nil {
			paxlog.Logger.Error().Err(err).Msg("presenting frame failed")
			return
		}
		if win.PollQuit() {
			return
		}
		time.Sleep(16 * time.Millisecond)
	}
}

func writeBMP(buf *pax.Buffer, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.GetPixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()})
		}
	}
	var out bytes.Buffer
	if err := bmp.Encode(&out, img); err != nil {
		return err
	}
	return os.WriteFile(path, out.Bytes(), 0o644)
}
