// Package viz renders composed scene geometry: an orbiting camera with
// perspective projection, an NRGBA rasterizer for GIF frames and a
// braille canvas for the terminal view.
package viz
