// Package rules evaluates casting design-rule compliance for measured
// features. Evaluation is a pure function of the measurements (and, for
// ribs and bosses, the detector-time properties) against a fixed
// threshold table, so verdicts are reproducible.
package rules

import (
	"casting-inspector/internal/detect"
	"casting-inspector/internal/measure"
)

// Verdict is a per-rule compliance outcome.
type Verdict string

const (
	Yes         Verdict = "Yes"
	No          Verdict = "No"
	NeedsReview Verdict = "Needs Review"
)

// Rule identifiers from the casting design-rule catalog.
const (
	RuleUniformThickness = "R5"  // Wall thickness uniformity
	RuleTransitionRatio  = "R8"  // Max/min wall thickness ratio
	RuleFillet           = "R3"  // Corner fillet presence
	RuleCornerAngle      = "R7"  // Sharp internal angles
	RuleSectionCount     = "R4"  // Sections meeting at a junction
	RuleRibSpacing       = "R9"  // Rib pair spacing
	RuleBossSize         = "R10" // Boss pad size
)

// Thresholds is the rule table. Values between a rule's Yes and No
// bounds resolve to Needs Review.
type Thresholds struct {
	// R5: wall thickness sample standard deviation
	WallVariationYes float64 `yaml:"wall_variation_yes"`
	WallVariationNo  float64 `yaml:"wall_variation_no"`

	// R8: max/min thickness ratio (divisor floored at 1)
	WallRatioYes float64 `yaml:"wall_ratio_yes"`
	WallRatioNo  float64 `yaml:"wall_ratio_no"`

	// R3/R7: corner angles, shared verdict
	CornerMinAngleYes float64 `yaml:"corner_min_angle_yes"`
	CornerMinAngleNo  float64 `yaml:"corner_min_angle_no"`
	CornerAcuteNo     float64 `yaml:"corner_acute_no"`

	// R4: distinct wall sections at a junction
	JunctionSectionsYes float64 `yaml:"junction_sections_yes"`
	JunctionSectionsNo  float64 `yaml:"junction_sections_no"`

	// R9: rib spacing band (px at 300 DPI)
	RibSpacingYesLow  float64 `yaml:"rib_spacing_yes_low"`
	RibSpacingYesHigh float64 `yaml:"rib_spacing_yes_high"`
	RibSpacingNoLow   float64 `yaml:"rib_spacing_no_low"`
	RibSpacingNoHigh  float64 `yaml:"rib_spacing_no_high"`

	// R10: boss characteristic size (px)
	BossSizeYes float64 `yaml:"boss_size_yes"`
	BossSizeNo  float64 `yaml:"boss_size_no"`
}

// DefaultThresholds returns the standard rule table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WallVariationYes:    2.0,
		WallVariationNo:     5.0,
		WallRatioYes:        2.0,
		WallRatioNo:         3.0,
		CornerMinAngleYes:   45,
		CornerMinAngleNo:    30,
		CornerAcuteNo:       2,
		JunctionSectionsYes: 2,
		JunctionSectionsNo:  3,
		RibSpacingYesLow:    15,
		RibSpacingYesHigh:   50,
		RibSpacingNoLow:     10,
		RibSpacingNoHigh:    80,
		BossSizeYes:         30,
		BossSizeNo:          60,
	}
}

// Evaluate maps a feature's measurements to rule verdicts. A feature
// contributes zero, one, or two verdicts depending on its type; corners
// contribute to R3 and R7 simultaneously with the same verdict.
func Evaluate(f detect.Feature, m measure.Measurement, t Thresholds) map[string]Verdict {
	verdicts := make(map[string]Verdict)

	switch f.Type {
	case detect.Wall:
		if variation, ok := m["thickness_variation"]; ok {
			verdicts[RuleUniformThickness] = band(variation, t.WallVariationYes, t.WallVariationNo)
		}
		maxT, okMax := m["max_thickness"]
		minT, okMin := m["min_thickness"]
		if okMax && okMin {
			// Floor the divisor at 1 so a zero minimum cannot divide by zero
			ratio := maxT / max(minT, 1)
			verdicts[RuleTransitionRatio] = band(ratio, t.WallRatioYes, t.WallRatioNo)
		}

	case detect.Corner:
		acute, ok := m["acute_angles"]
		if !ok {
			break
		}
		minAngle, hasMin := m["min_angle"]
		if !hasMin {
			minAngle = 90
		}
		var v Verdict
		switch {
		case acute == 0 && minAngle > t.CornerMinAngleYes:
			v = Yes
		case acute > t.CornerAcuteNo || minAngle < t.CornerMinAngleNo:
			v = No
		default:
			v = NeedsReview
		}
		verdicts[RuleFillet] = v
		verdicts[RuleCornerAngle] = v

	case detect.Junction:
		if sections, ok := m["unique_sections"]; ok {
			switch {
			case sections <= t.JunctionSectionsYes:
				verdicts[RuleSectionCount] = Yes
			case sections > t.JunctionSectionsNo:
				verdicts[RuleSectionCount] = No
			default:
				verdicts[RuleSectionCount] = NeedsReview
			}
		}

	case detect.Rib:
		if spacing, ok := f.Properties["spacing"]; ok {
			switch {
			case spacing > t.RibSpacingYesLow && spacing < t.RibSpacingYesHigh:
				verdicts[RuleRibSpacing] = Yes
			case spacing < t.RibSpacingNoLow || spacing > t.RibSpacingNoHigh:
				verdicts[RuleRibSpacing] = No
			default:
				verdicts[RuleRibSpacing] = NeedsReview
			}
		}

	case detect.Boss:
		if size, ok := f.Properties["size"]; ok {
			verdicts[RuleBossSize] = band(size, t.BossSizeYes, t.BossSizeNo)
		}
	}

	return verdicts
}

// band maps a value against a low Yes bound and a high No bound;
// values between the two get Needs Review.
func band(value, yes, no float64) Verdict {
	switch {
	case value < yes:
		return Yes
	case value > no:
		return No
	default:
		return NeedsReview
	}
}

// AppliesTo returns the rule identifiers a feature type can contribute
// verdicts for.
func AppliesTo(t detect.FeatureType) []string {
	switch t {
	case detect.Wall:
		return []string{RuleUniformThickness, RuleTransitionRatio}
	case detect.Corner:
		return []string{RuleFillet, RuleCornerAngle}
	case detect.Junction:
		return []string{RuleSectionCount}
	case detect.Rib:
		return []string{RuleRibSpacing}
	case detect.Boss:
		return []string{RuleBossSize}
	default:
		return nil
	}
}
