package route

// Config defines the tuning parameters for elbow routing. Hosts pass a
// Config on every call; zero-valued fields fall back to the defaults.
type Config struct {
	// BasePadding is the clearance kept between routes and bound shapes.
	BasePadding float64
	// ArrowheadGap is the extra clearance added on the side of a bound
	// shape that carries an arrowhead.
	ArrowheadGap float64
	// BendPenalty is the extra search cost charged whenever the path
	// changes axis. Larger values produce fewer elbows at the expense of
	// longer routes.
	BendPenalty float64
	// MaxExpansions caps the number of nodes the grid search may pop
	// before giving up and falling back to a midpoint elbow.
	MaxExpansions int
	// MinSegmentLength is the length below which a segment is merged away
	// during post-processing.
	MinSegmentLength float64
	// CoordClamp bounds the magnitude of every output coordinate.
	CoordClamp float64
}

// DefaultConfig returns sensible routing defaults.
func DefaultConfig() Config {
	return Config{
		BasePadding:      32,
		ArrowheadGap:     8,
		BendPenalty:      40,
		MaxExpansions:    2048,
		MinSegmentLength: 0.01,
		CoordClamp:       1e6,
	}
}

// Normalized returns the config with unset fields filled from
// DefaultConfig. A zero ArrowheadGap is kept, so hosts can route flush
// against shape boundaries.
func (c Config) Normalized() Config {
	def := DefaultConfig()
	if c.BasePadding <= 0 {
		c.BasePadding = def.BasePadding
	}
	if c.ArrowheadGap < 0 {
		c.ArrowheadGap = def.ArrowheadGap
	}
	if c.BendPenalty <= 0 {
		c.BendPenalty = def.BendPenalty
	}
	if c.MaxExpansions <= 0 {
		c.MaxExpansions = def.MaxExpansions
	}
	if c.MinSegmentLength <= 0 {
		c.MinSegmentLength = def.MinSegmentLength
	}
	if c.CoordClamp <= 0 {
		c.CoordClamp = def.CoordClamp
	}
	return c
}
