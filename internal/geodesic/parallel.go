package geodesic

import (
	"sync"

	"github.com/san-kum/photonsphere/internal/physics"
)

// TraceAll traces one trajectory per impact parameter, fanning out
// across goroutines. Results keep the order of bs; rays share no
// mutable state.
func TraceAll(bh physics.BlackHole, bs []float64, opts Options) ([]*Trajectory, error) {
	results := make([]*Trajectory, len(bs))
	errs := make([]error, len(bs))

	var wg sync.WaitGroup
	for i, b := range bs {
		wg.Add(1)
		go func(idx int, b float64) {
			defer wg.Done()
			results[idx], errs[idx] = Trace(bh, b, opts)
		}(i, b)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
