package scene

import "github.com/san-kum/photonsphere/internal/viz"

// revealKnee is the animation fraction at which rays finish drawing;
// the remainder of the loop shows the completed picture.
const revealKnee = 0.8

// Frame returns the drawable lines for one animation instant. progress
// runs over [0, 1]; rays reveal progressively and are fully drawn from
// revealKnee onward. Layering: grid, horizon, straight rays, geodesics
// with head markers.
func (s *Scene) Frame(progress float64) []viz.Line {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	lines := make([]viz.Line, 0, len(s.grid)+len(s.horizon)+2*len(s.Rays))
	lines = append(lines, s.grid...)
	lines = append(lines, s.horizon...)

	for _, ray := range s.Rays {
		lines = append(lines, viz.Line{Points: ray.Straight, Color: ray.Color, Dashed: true})
	}
	for _, ray := range s.Rays {
		end := len(ray.Path)
		if progress < revealKnee {
			end = int(progress * float64(len(ray.Path)) / revealKnee)
		}
		if end < 2 {
			continue
		}
		lines = append(lines, viz.Line{Points: ray.Path[:end], Color: ray.Color, Marker: true})
	}
	return lines
}
