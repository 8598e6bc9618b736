package export

import (
	"encoding/json"
	"math"
	"os"

	"github.com/san-kum/photonsphere/internal/geodesic"
)

// trajectoryRecord is the on-disk shape of one traced ray. Deflection is
// a pointer so captured rays serialize as null rather than NaN, which
// encoding/json rejects.
type trajectoryRecord struct {
	ImpactParameter float64      `json:"impact_parameter"`
	Outcome         string       `json:"outcome"`
	MinRadius       float64      `json:"min_radius"`
	Revolutions     float64      `json:"revolutions"`
	Deflection      *float64     `json:"deflection"`
	Points          [][2]float64 `json:"points,omitempty"`
}

func makeRecord(traj *geodesic.Trajectory, withPoints bool) trajectoryRecord {
	rec := trajectoryRecord{
		ImpactParameter: traj.ImpactParameter,
		Outcome:         traj.Outcome.String(),
		MinRadius:       traj.MinRadius,
		Revolutions:     traj.Revolutions,
	}
	if !math.IsNaN(traj.Deflection) {
		d := traj.Deflection
		rec.Deflection = &d
	}
	if withPoints {
		rec.Points = make([][2]float64, len(traj.Points))
		for i, p := range traj.Points {
			rec.Points[i] = [2]float64{p.R, p.Phi}
		}
	}
	return rec
}

// WriteJSON serializes the trajectories to path as an indented JSON
// array. withPoints controls whether the full (r, φ) sample lists are
// included or only the per-ray summary.
func WriteJSON(path string, trajs []*geodesic.Trajectory, withPoints bool) error {
	recs := make([]trajectoryRecord, len(trajs))
	for i, traj := range trajs {
		recs[i] = makeRecord(traj, withPoints)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}
