package bars

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-bars/dsp/interp"
)

// MaxBars is the largest bar count a configuration may produce, padding
// included.
const MaxBars = math.MaxUint16

const (
	defaultAmountBars  = 30
	defaultLowHz       = 50.0
	defaultHighHz      = 10000.0
	defaultSensitivity = 0.2
)

// FreqRange is the analysed frequency window in Hz.
type FreqRange struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Distribution controls the horizontal spacing of supporting points.
type Distribution int

const (
	// DistributionUniform spreads supporting points evenly across the bars.
	DistributionUniform Distribution = iota
	// DistributionNatural keeps the spacing produced by the mel mapping.
	DistributionNatural
)

// PaddingSide selects where silent bars are added.
type PaddingSide int

const (
	PaddingLeft PaddingSide = iota
	PaddingRight
	PaddingBoth
)

// Padding adds Size silent bars on one or both sides of the bar array.
type Padding struct {
	Side PaddingSide `yaml:"side"`
	Size int         `yaml:"size"`
}

func (p *Padding) leading() int {
	if p == nil || (p.Side != PaddingLeft && p.Side != PaddingBoth) {
		return 0
	}
	return p.Size
}

func (p *Padding) trailing() int {
	if p == nil || (p.Side != PaddingRight && p.Side != PaddingBoth) {
		return 0
	}
	return p.Size
}

// Config configures a [BarProcessor].
type Config struct {
	AmountBars    int          `yaml:"amount_bars"`
	FreqRange     FreqRange    `yaml:"freq_range"`
	Interpolation interp.Mode  `yaml:"interpolation"`
	Sensitivity   float32      `yaml:"sensitivity"`
	Distribution  Distribution `yaml:"bar_distribution"`
	Padding       *Padding     `yaml:"padding,omitempty"`
}

// DefaultConfig returns 30 cubic-spline bars over 50 Hz to 10 kHz.
func DefaultConfig() Config {
	return Config{
		AmountBars:    defaultAmountBars,
		FreqRange:     FreqRange{Low: defaultLowHz, High: defaultHighHz},
		Interpolation: interp.ModeCubicSpline,
		Sensitivity:   defaultSensitivity,
		Distribution:  DistributionUniform,
	}
}

// clone returns c with its own copy of Padding.
func (c Config) clone() Config {
	if c.Padding != nil {
		p := *c.Padding
		c.Padding = &p
	}
	return c
}

// TotalBars returns the length of every output row: AmountBars plus padding.
func (c Config) TotalBars() int {
	return c.AmountBars + c.Padding.leading() + c.Padding.trailing()
}

// Validate checks c without looking at any spectrum source.
func (c Config) Validate() error {
	if c.AmountBars < 1 || c.AmountBars > MaxBars {
		return fmt.Errorf("%w: amount bars must be in [1,%d]: %d", ErrInvalidConfig, MaxBars, c.AmountBars)
	}
	lo, hi := c.FreqRange.Low, c.FreqRange.High
	if !(lo > 0) || !(hi > lo) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: need 0 < low < high: [%g, %g]", ErrInvalidFrequencyRange, lo, hi)
	}
	if !c.Interpolation.Valid() {
		return fmt.Errorf("%w: interpolation %v", ErrInvalidConfig, c.Interpolation)
	}
	if !(c.Sensitivity > 0) || math.IsInf(float64(c.Sensitivity), 0) {
		return fmt.Errorf("%w: sensitivity must be > 0: %v", ErrInvalidConfig, c.Sensitivity)
	}
	if c.Distribution != DistributionUniform && c.Distribution != DistributionNatural {
		return fmt.Errorf("%w: bar distribution %v", ErrInvalidConfig, c.Distribution)
	}
	if p := c.Padding; p != nil {
		if p.Side < PaddingLeft || p.Side > PaddingBoth {
			return fmt.Errorf("%w: padding side %v", ErrInvalidConfig, p.Side)
		}
		if p.Size <= 0 {
			return fmt.Errorf("%w: padding size must be > 0: %d", ErrInvalidConfig, p.Size)
		}
		if p.Size > MaxBars || c.TotalBars() > MaxBars {
			return fmt.Errorf("%w: %d bars + %s padding of %d exceeds %d",
				ErrPaddingOverflow, c.AmountBars, p.Side, p.Size, MaxBars)
		}
	}
	return nil
}

// Option mutates a Config.
type Option func(*Config)

// WithAmountBars sets the number of bars. Values outside [1, MaxBars] are ignored.
func WithAmountBars(n int) Option {
	return func(c *Config) {
		if n >= 1 && n <= MaxBars {
			c.AmountBars = n
		}
	}
}

// WithFrequencyRange sets the analysed window. Requires 0 < low < high.
func WithFrequencyRange(low, high float64) Option {
	return func(c *Config) {
		if low > 0 && high > low {
			c.FreqRange = FreqRange{Low: low, High: high}
		}
	}
}

// WithInterpolation selects the interpolation mode.
func WithInterpolation(m interp.Mode) Option {
	return func(c *Config) {
		if m.Valid() {
			c.Interpolation = m
		}
	}
}

// WithSensitivity sets the decay gravity multiplier. Must be > 0.
func WithSensitivity(s float32) Option {
	return func(c *Config) {
		if s > 0 {
			c.Sensitivity = s
		}
	}
}

// WithDistribution sets the supporting point spacing.
func WithDistribution(d Distribution) Option {
	return func(c *Config) {
		if d == DistributionUniform || d == DistributionNatural {
			c.Distribution = d
		}
	}
}

// WithPadding adds size silent bars on side.
func WithPadding(side PaddingSide, size int) Option {
	return func(c *Config) {
		if size > 0 && side >= PaddingLeft && side <= PaddingBoth {
			c.Padding = &Padding{Side: side, Size: size}
		}
	}
}

// ApplyOptions applies zero or more options to [DefaultConfig].
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

var distributionNames = [...]string{
	DistributionUniform: "uniform",
	DistributionNatural: "natural",
}

func (d Distribution) String() string {
	if d < 0 || int(d) >= len(distributionNames) {
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
	return distributionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Distribution) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(distributionNames) {
		return nil, fmt.Errorf("%w: bar distribution %d", ErrInvalidConfig, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Distribution) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "uniform":
		*d = DistributionUniform
	case "natural":
		*d = DistributionNatural
	default:
		return fmt.Errorf("%w: bar distribution %q", ErrInvalidConfig, text)
	}
	return nil
}

var paddingSideNames = [...]string{
	PaddingLeft:  "left",
	PaddingRight: "right",
	PaddingBoth:  "both",
}

func (s PaddingSide) String() string {
	if s < 0 || int(s) >= len(paddingSideNames) {
		return fmt.Sprintf("PaddingSide(%d)", int(s))
	}
	return paddingSideNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s PaddingSide) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(paddingSideNames) {
		return nil, fmt.Errorf("%w: padding side %d", ErrInvalidConfig, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaddingSide) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "left":
		*s = PaddingLeft
	case "right":
		*s = PaddingRight
	case "both":
		*s = PaddingBoth
	default:
		return fmt.Errorf("%w: padding side %q", ErrInvalidConfig, text)
	}
	return nil
}
