package viz

import (
	"image"
	"image/color"
	"sort"
)

// Line is a drawable polyline in world space.
type Line struct {
	Points []Vec3
	Color  color.NRGBA
	// Marker draws a small block at the last point (used for the photon
	// head in animations).
	Marker bool
	// Dashed skips every other segment (straight comparison rays).
	Dashed bool
}

// RenderImage rasterizes the lines into a fresh NRGBA frame. Lines are
// drawn in slice order, so callers control layering (grid, horizon,
// straight rays, geodesics, markers).
func RenderImage(lines []Line, cam *Camera, w, h int, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, bg)
		}
	}

	for _, line := range lines {
		drawLine(img, line, cam, w, h)
	}
	return img
}

func drawLine(img *image.NRGBA, line Line, cam *Camera, w, h int) {
	half := float64(minInt(w, h)) / 2
	cx, cy := float64(w)/2, float64(h)/2

	var prevX, prevY int
	var prevOK bool
	for i, p := range line.Points {
		nx, ny, _, ok := cam.Project(p)
		if !ok {
			prevOK = false
			continue
		}
		px := int(cx + nx*half)
		py := int(cy - ny*half)
		if prevOK && i > 0 && !(line.Dashed && i%2 == 0) {
			bresenham(img, prevX, prevY, px, py, line.Color)
		}
		prevX, prevY, prevOK = px, py, true
	}

	if line.Marker && prevOK {
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				setPixel(img, prevX+dx, prevY+dy, line.Color)
			}
		}
	}
}

func bresenham(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		setPixel(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= img.Rect.Dx() || y >= img.Rect.Dy() {
		return
	}
	img.SetNRGBA(x, y, c)
}

// RenderCanvas draws the lines onto a braille canvas with painter
// ordering by mean depth (colors are ignored in the terminal view).
func RenderCanvas(lines []Line, cam *Camera, c *Canvas) {
	type projected struct {
		segs  [][4]int
		depth float64
	}

	sw, sh := c.Width*2, c.Height*4
	half := float64(minInt(sw, sh)) / 2
	cx, cy := float64(sw)/2, float64(sh)/2

	items := make([]projected, 0, len(lines))
	for _, line := range lines {
		var item projected
		var prevX, prevY int
		var prevOK bool
		depthSum := 0.0
		n := 0
		for i, p := range line.Points {
			nx, ny, depth, ok := cam.Project(p)
			if !ok {
				prevOK = false
				continue
			}
			px := int(cx + nx*half)
			py := int(cy - ny*half)
			depthSum += depth
			n++
			if prevOK && i > 0 && !(line.Dashed && i%2 == 0) {
				item.segs = append(item.segs, [4]int{prevX, prevY, px, py})
			}
			prevX, prevY, prevOK = px, py, true
		}
		if n > 0 {
			item.depth = depthSum / float64(n)
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].depth < items[j].depth })
	for _, item := range items {
		for _, s := range item.segs {
			c.DrawLine(s[0], s[1], s[2], s[3])
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
