package detect

// Params bundles the tunables for all five detectors. The result caps
// double as resource bounds on pathological images with dense edge
// content.
type Params struct {
	Wall     WallParams     `yaml:"wall"`
	Corner   CornerParams   `yaml:"corner"`
	Junction JunctionParams `yaml:"junction"`
	Rib      RibParams      `yaml:"rib"`
	Boss     BossParams     `yaml:"boss"`
}

// WallParams configures straight-segment detection for wall edges.
type WallParams struct {
	VoteThreshold int     `yaml:"vote_threshold"` // Hough accumulator votes
	MinLength     float64 `yaml:"min_length"`     // Discard shorter segments (px)
	MaxGap        float64 `yaml:"max_gap"`        // Bridgeable gap within one line (px)
	BorderMargin  int     `yaml:"border_margin"`  // Endpoints this close to the border are frame/annotation
	MaxCount      int     `yaml:"max_count"`      // Retain at most this many, longest first
	Padding       int     `yaml:"padding"`        // Region growth for downstream ROI context
}

// CornerParams configures Harris corner response detection.
type CornerParams struct {
	BlockSize    int     `yaml:"block_size"`
	KSize        int     `yaml:"ksize"`
	K            float64 `yaml:"k"`
	ResponseFrac float64 `yaml:"response_frac"` // Keep responses above this fraction of the maximum
	BorderMargin int     `yaml:"border_margin"` // Wider than the wall margin; border corners are mostly false
	MaxCount     int     `yaml:"max_count"`
	BoxSize      int     `yaml:"box_size"` // Fixed square region centered on the response
}

// JunctionParams configures T- and cross-junction detection.
type JunctionParams struct {
	KernelSize int     `yaml:"kernel_size"` // Cross-shaped top-hat structuring element
	MinArea    float64 `yaml:"min_area"`    // Contours below this are noise (px^2)
	MaxCount   int     `yaml:"max_count"`
	Padding    int     `yaml:"padding"`
}

// RibParams configures parallel line-pair detection.
type RibParams struct {
	VoteThreshold  int     `yaml:"vote_threshold"`
	MinLength      float64 `yaml:"min_length"`
	MaxGap         float64 `yaml:"max_gap"`
	MaxSegments    int     `yaml:"max_segments"`    // Raw segments considered for pairing
	AngleTolerance float64 `yaml:"angle_tolerance"` // Radians
	MinSpacing     float64 `yaml:"min_spacing"`     // Plausible rib spacing band (px)
	MaxSpacing     float64 `yaml:"max_spacing"`
	Padding        int     `yaml:"padding"`
	MaxCount       int     `yaml:"max_count"`
}

// BossParams configures blob detection for solid circular pads.
type BossParams struct {
	MinArea      float64 `yaml:"min_area"`
	MaxArea      float64 `yaml:"max_area"`
	MinConvexity float64 `yaml:"min_convexity"` // Bosses are solid, not outline-only
	MaxCount     int     `yaml:"max_count"`
}

// DefaultParams returns detector parameters tuned for 300 DPI drawings.
func DefaultParams() Params {
	return Params{
		Wall: WallParams{
			VoteThreshold: 200,
			MinLength:     100,
			MaxGap:        20,
			BorderMargin:  50,
			MaxCount:      15,
			Padding:       30,
		},
		Corner: CornerParams{
			BlockSize:    2,
			KSize:        3,
			K:            0.04,
			ResponseFrac: 0.1,
			BorderMargin: 80,
			MaxCount:     10,
			BoxSize:      50,
		},
		Junction: JunctionParams{
			KernelSize: 15,
			MinArea:    200,
			MaxCount:   10,
			Padding:    30,
		},
		Rib: RibParams{
			VoteThreshold:  80,
			MinLength:      30,
			MaxGap:         5,
			MaxSegments:    30,
			AngleTolerance: 0.2,
			MinSpacing:     10,
			MaxSpacing:     100,
			Padding:        15,
			MaxCount:       5,
		},
		Boss: BossParams{
			MinArea:      1000,
			MaxArea:      10000,
			MinConvexity: 0.7,
			MaxCount:     5,
		},
	}
}
