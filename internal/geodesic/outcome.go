package geodesic

// Outcome is the classified fate of a traced light ray.
type Outcome int

const (
	// Escaped rays turn around and recede past their starting radius.
	Escaped Outcome = iota
	// Captured rays cross the event horizon (or diverge toward u → ∞,
	// which models the same infall).
	Captured
	// CriticallyScattered rays loop near the photon sphere until the
	// revolution or step budget runs out, or sit inside the dead-band
	// around the critical impact parameter.
	CriticallyScattered
)

func (o Outcome) String() string {
	switch o {
	case Escaped:
		return "escaped"
	case Captured:
		return "captured"
	case CriticallyScattered:
		return "critical"
	default:
		return "unknown"
	}
}
