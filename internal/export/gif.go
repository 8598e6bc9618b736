// Package export writes rendered animations and traced trajectory data
// to disk.
package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// EncodeGIF quantizes the frames to the Plan9 palette with
// Floyd-Steinberg dithering and writes a looping animated GIF.
// delay is in 100ths of a second (5 => 20 fps).
func EncodeGIF(path string, frames []*image.NRGBA, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames to encode")
	}
	if delay <= 0 {
		return fmt.Errorf("export: delay must be positive, got %d", delay)
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}

	for _, frame := range frames {
		pimg := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), frame, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
