package profile

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvwalk/corrupt"
	"github.com/katalvlaran/lvwalk/walk"
)

// EnvPrefix prefixes every environment override, e.g. LVWALK_WALK_LEN.
const EnvPrefix = "LVWALK"

// Keys shared by the cobra flags, viper and the environment.
const (
	KeyInput            = "input"
	KeyDirected         = "directed"
	KeySubSampling      = "sub-sampling"
	KeyMaxEntropy       = "merw"
	KeyNWalks           = "n-walks"
	KeyWalkLen          = "walk-len"
	KeyP                = "p"
	KeyQ                = "q"
	KeyAlpha            = "alpha"
	KeySeed             = "seed"
	KeyWorkers          = "workers"
	KeyOutput           = "output"
	KeyWeightsOutput    = "weights-output"
	KeyRate             = "rate"
	KeyNSExponent       = "ns-exponent"
	KeyTableSize        = "table-size"
	KeySimilarityOutput = "similarity-output"
	KeyVerbose          = "verbose"
)

// Profile is the resolved configuration of one CLI run.
type Profile struct {
	// Input is the edge-list path.
	Input string
	// Directed keeps edges one-way; otherwise every edge is mirrored.
	Directed bool
	// SubSampling is the column down-weighting exponent, 0 disables it.
	SubSampling float64
	// MaxEntropy builds a maximal-entropy transition matrix instead.
	MaxEntropy bool

	NWalks  int
	WalkLen int
	P       float64
	Q       float64
	Alpha   float64
	Seed    uint64
	Workers int

	// Output receives the walks; WeightsOutput (optional) the edge weights.
	Output        string
	WeightsOutput string

	// Corruption settings.
	Rate             float64
	NSExponent       float64
	TableSize        int
	SimilarityOutput string

	Verbose bool
}

// NewViper returns a viper instance with every default registered and
// LVWALK_* environment overrides enabled.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDirected, false)
	v.SetDefault(KeySubSampling, 0.0)
	v.SetDefault(KeyMaxEntropy, false)

	def := walk.DefaultOptions()
	v.SetDefault(KeyNWalks, def.NWalks)
	v.SetDefault(KeyWalkLen, def.WalkLen)
	v.SetDefault(KeyP, def.P)
	v.SetDefault(KeyQ, def.Q)
	v.SetDefault(KeyAlpha, def.Alpha)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyWorkers, 0)

	v.SetDefault(KeyRate, corrupt.DefaultRate)
	v.SetDefault(KeyNSExponent, corrupt.DefaultExponent)
	v.SetDefault(KeyTableSize, corrupt.DefaultTableSize)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper reads a Profile out of v.
func FromViper(v *viper.Viper) *Profile {
	return &Profile{
		Input:            v.GetString(KeyInput),
		Directed:         v.GetBool(KeyDirected),
		SubSampling:      v.GetFloat64(KeySubSampling),
		MaxEntropy:       v.GetBool(KeyMaxEntropy),
		NWalks:           v.GetInt(KeyNWalks),
		WalkLen:          v.GetInt(KeyWalkLen),
		P:                v.GetFloat64(KeyP),
		Q:                v.GetFloat64(KeyQ),
		Alpha:            v.GetFloat64(KeyAlpha),
		Seed:             v.GetUint64(KeySeed),
		Workers:          v.GetInt(KeyWorkers),
		Output:           v.GetString(KeyOutput),
		WeightsOutput:    v.GetString(KeyWeightsOutput),
		Rate:             v.GetFloat64(KeyRate),
		NSExponent:       v.GetFloat64(KeyNSExponent),
		TableSize:        v.GetInt(KeyTableSize),
		SimilarityOutput: v.GetString(KeySimilarityOutput),
		Verbose:          v.GetBool(KeyVerbose),
	}
}

// WalkOptions maps the profile onto walk.Options.
func (p *Profile) WalkOptions() walk.Options {
	return walk.Options{
		NWalks:  p.NWalks,
		WalkLen: p.WalkLen,
		P:       p.P,
		Q:       p.Q,
		Alpha:   p.Alpha,
		Seed:    p.Seed,
		Workers: p.Workers,
	}
}

// CorruptOptions maps the profile onto corrupt.Options. The corruption
// stream is derived from the walk seed so the two never coincide.
func (p *Profile) CorruptOptions() corrupt.Options {
	return corrupt.Options{
		Rate:    p.Rate,
		Seed:    ^p.Seed,
		Workers: p.Workers,
	}
}

// Validate checks the settings shared by every command.
func (p *Profile) Validate() error {
	if p.Input == "" {
		return errors.Errorf("--%s is required", KeyInput)
	}
	if p.Output == "" {
		return errors.Errorf("--%s is required", KeyOutput)
	}
	if !(p.SubSampling >= 0) {
		return errors.Errorf("--%s=%g must be ≥ 0", KeySubSampling, p.SubSampling)
	}
	if p.MaxEntropy && p.Directed {
		return errors.Errorf("--%s needs an undirected graph", KeyMaxEntropy)
	}
	if p.MaxEntropy && p.SubSampling != 0 {
		return errors.Errorf("--%s and --%s are exclusive", KeyMaxEntropy, KeySubSampling)
	}
	return errors.Wrap(p.WalkOptions().Validate(), "walk options")
}

// ValidateCorrupt checks Validate plus the corruption settings.
func (p *Profile) ValidateCorrupt() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.SimilarityOutput == "" {
		return errors.Errorf("--%s is required", KeySimilarityOutput)
	}
	if p.TableSize <= 0 {
		return errors.Errorf("--%s=%d must be > 0", KeyTableSize, p.TableSize)
	}
	if !(p.NSExponent >= 0) {
		return errors.Errorf("--%s=%g must be ≥ 0", KeyNSExponent, p.NSExponent)
	}
	if p.WalkLen < 2 {
		return errors.Errorf("--%s=%d: corruption needs walks of length ≥ 2", KeyWalkLen, p.WalkLen)
	}
	return errors.Wrap(p.CorruptOptions().Validate(), "corrupt options")
}

// Logger returns a console zerolog logger; Verbose enables debug level.
func (p *Profile) Logger(out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if p.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Str("service", "lvwalk").Logger()
}
