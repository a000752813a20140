package scoring

import "strings"

// MethodConfig is the per-method configuration. Each configurable method has
// exactly one variant; the set is sealed to this package.
type MethodConfig interface {
	// Method returns the method this variant configures
	Method() MethodID
	sealed()
}

// Scaling maps a normalized distance in [0,1] onto a curve
type Scaling string

const (
	ScalingLinear      Scaling = "linear"
	ScalingExponential Scaling = "exponential"
	ScalingLogarithmic Scaling = "logarithmic"
)

// ParseScaling normalizes a scaling name. "quadratic" is an alias of exponential.
func ParseScaling(s string) (Scaling, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return ScalingLinear, true
	case "exponential", "quadratic":
		return ScalingExponential, true
	case "logarithmic", "log":
		return ScalingLogarithmic, true
	}
	return "", false
}

// UnmarshalText accepts aliases; unknown names are kept verbatim so validation
// can report them
func (s *Scaling) UnmarshalText(text []byte) error {
	if parsed, ok := ParseScaling(string(text)); ok {
		*s = parsed
		return nil
	}
	*s = Scaling(text)
	return nil
}

// Valid reports whether s is a known scaling
func (s Scaling) Valid() bool {
	return s == ScalingLinear || s == ScalingExponential || s == ScalingLogarithmic
}

// FlagMode selects how the conditional flag tests membership
type FlagMode string

const (
	FlagBoolean FlagMode = "boolean"
	FlagBinary  FlagMode = "binary"
	FlagMin     FlagMode = "min"
	FlagMax     FlagMode = "max"
	FlagRange   FlagMode = "range"
)

// Valid reports whether m is a known mode
func (m FlagMode) Valid() bool {
	switch m {
	case FlagBoolean, FlagBinary, FlagMin, FlagMax, FlagRange:
		return true
	}
	return false
}

// Numeric reports whether the mode compares parsed numbers
func (m FlagMode) Numeric() bool {
	return m == FlagMin || m == FlagMax || m == FlagRange
}

// BaselineMode selects the reference point for one-sided distance
type BaselineMode string

const (
	BaselineAverage BaselineMode = "average"
	BaselineMedian  BaselineMode = "median"
	BaselineCustom  BaselineMode = "custom"
)

// Valid reports whether m is a known baseline mode
func (m BaselineMode) Valid() bool {
	return m == BaselineAverage || m == BaselineMedian || m == BaselineCustom
}

// Side is the half of the distribution a one-sided distance rewards
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is a known side
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Reward selects whether sparse or dense buckets score high
type Reward string

const (
	RewardLeast Reward = "least"
	RewardMost  Reward = "most"
)

// Valid reports whether r is a known reward
func (r Reward) Valid() bool {
	return r == RewardLeast || r == RewardMost
}

// SignificanceMode is carried for a future tail-aware comparison
type SignificanceMode string

const (
	SignificanceOneSided SignificanceMode = "one-sided"
	SignificanceTwoSided SignificanceMode = "two-sided"
)

// Valid reports whether m is a known significance mode
func (m SignificanceMode) Valid() bool {
	return m == SignificanceOneSided || m == SignificanceTwoSided
}

// Tail is only meaningful for one-sided significance
type Tail string

const (
	TailUpper Tail = "upper"
	TailLower Tail = "lower"
)

// Valid reports whether t is a known tail
func (t Tail) Valid() bool {
	return t == TailUpper || t == TailLower
}

// ConditionalFlagConfig configures the {0,1} membership flag
type ConditionalFlagConfig struct {
	Mode      FlagMode `json:"mode"`
	TrueValue string   `json:"trueValue,omitempty"`
	Threshold float64  `json:"threshold,omitempty"`
	Min       float64  `json:"min,omitempty"`
	Max       float64  `json:"max,omitempty"`
}

// OneSidedConfig configures distance from a baseline on one side only
type OneSidedConfig struct {
	BaselineMode  BaselineMode `json:"baselineMode"`
	BaselineValue float64      `json:"baselineValue"`
	Side          Side         `json:"side"`
	Scaling       Scaling      `json:"scaling"`
	Slope         float64      `json:"slope"`
}

// ZeroToOneConfig configures min-max normalization
type ZeroToOneConfig struct {
	Scaling Scaling `json:"scaling"`
	Slope   float64 `json:"slope"`
}

// DistributionConfig configures bucket density scoring. Scaling and Slope
// shape the reward after the bucket count is placed between the least and
// most populated buckets.
type DistributionConfig struct {
	Buckets int     `json:"buckets"`
	Scaling Scaling `json:"scaling"`
	Slope   float64 `json:"slope"`
	Reward  Reward  `json:"reward"`
}

// SignificanceConfig configures the threshold flag. SignificanceLevel is a
// percentage in (0,100) compared directly against each value.
type SignificanceConfig struct {
	SignificanceLevel float64          `json:"significanceLevel"`
	Mode              SignificanceMode `json:"mode"`
	Tail              Tail             `json:"tail,omitempty"`
	FlagSignificant   bool             `json:"flagSignificant"`
}

func (ConditionalFlagConfig) Method() MethodID { return MethodConditionalFlag }
func (OneSidedConfig) Method() MethodID        { return MethodOneSided }
func (ZeroToOneConfig) Method() MethodID       { return MethodZeroToOne }
func (DistributionConfig) Method() MethodID    { return MethodDistribution }
func (SignificanceConfig) Method() MethodID    { return MethodSignificance }

func (ConditionalFlagConfig) sealed() {}
func (OneSidedConfig) sealed()        {}
func (ZeroToOneConfig) sealed()       {}
func (DistributionConfig) sealed()    {}
func (SignificanceConfig) sealed()    {}

// NewConfig returns an empty variant for method, or nil when the method takes
// no configuration or is unknown. Decoders unmarshal into the returned value.
func NewConfig(method MethodID) MethodConfig {
	switch method {
	case MethodConditionalFlag:
		return &ConditionalFlagConfig{}
	case MethodOneSided:
		return &OneSidedConfig{}
	case MethodZeroToOne:
		return &ZeroToOneConfig{}
	case MethodDistribution:
		return &DistributionConfig{}
	case MethodSignificance:
		return &SignificanceConfig{}
	}
	return nil
}

// Deref converts a pointer variant produced by NewConfig back to its value form
func Deref(cfg MethodConfig) MethodConfig {
	switch c := cfg.(type) {
	case *ConditionalFlagConfig:
		return *c
	case *OneSidedConfig:
		return *c
	case *ZeroToOneConfig:
		return *c
	case *DistributionConfig:
		return *c
	case *SignificanceConfig:
		return *c
	}
	return cfg
}
