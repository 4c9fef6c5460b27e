package career

// Config holds the scoring constants. The weight formula and cutoff are
// empirical values preserved from the production scoring behavior; they
// are tunables with no documented derivation, not derived quantities.
type Config struct {
	// RatingScaleMax is the top of the trait rating scale. Ratings and
	// criteria share this scale.
	RatingScaleMax int

	// TraitWeight scales each matched trait's contribution:
	// similarity × (expected / RatingScaleMax) × TraitWeight.
	TraitWeight float64

	// CutoffPercent drops roles scoring at or below this percentage.
	CutoffPercent int

	// MaxReasons caps the stored reason strings per role.
	MaxReasons int
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		RatingScaleMax: 6,
		TraitWeight:    10,
		CutoffPercent:  30,
		MaxReasons:     3,
	}
}
