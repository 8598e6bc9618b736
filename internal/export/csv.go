package export

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/san-kum/photonsphere/internal/analysis"
)

// WriteSweepCSV writes one row per swept impact parameter. Deflection is
// left empty for rays that did not escape.
func WriteSweepCSV(path string, points []analysis.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"b", "outcome", "deflection", "min_radius", "revolutions"}); err != nil {
		return err
	}
	for _, p := range points {
		deflection := ""
		if !math.IsNaN(p.Deflection) {
			deflection = strconv.FormatFloat(p.Deflection, 'g', -1, 64)
		}
		row := []string{
			strconv.FormatFloat(p.B, 'g', -1, 64),
			p.Outcome.String(),
			deflection,
			strconv.FormatFloat(p.MinRadius, 'g', -1, 64),
			strconv.FormatFloat(p.Revolutions, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
