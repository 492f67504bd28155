// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/admm/admm"
)

// File is the on-disk run description.
type File struct {
	Solver  Solver  `yaml:"solver"`
	Problem Problem `yaml:"problem"`
	Sweep   Sweep   `yaml:"sweep"`
}

// Solver mirrors admm.Params.
type Solver struct {
	MaxIterations              int           `yaml:"max_iterations" validate:"gte=0"`
	MaxComputationTime         time.Duration `yaml:"max_computation_time" validate:"gte=0"`
	Verbose                    bool          `yaml:"verbose"`
	Precision                  int           `yaml:"precision" validate:"gte=0,lte=17"`
	LogIterates                bool          `yaml:"log_iterates"`
	Rho                        float64       `yaml:"rho" validate:"gt=0"`
	PenaltyAdaptation          string        `yaml:"penalty_adaptation" validate:"oneof=none residual_balance spectral"`
	PenaltyAdaptationPeriod    int           `yaml:"penalty_adaptation_period" validate:"gte=1"`
	PenaltyAdaptationWindow    int           `yaml:"penalty_adaptation_window" validate:"gte=0"`
	ResidualBalanceMu          float64       `yaml:"residual_balance_mu" validate:"gt=1"`
	ResidualBalanceTau         float64       `yaml:"residual_balance_tau" validate:"gt=1"`
	SpectralMinimumCorrelation float64       `yaml:"spectral_minimum_correlation" validate:"gt=0,lt=1"`
	EpsAbsPrimal               float64       `yaml:"eps_abs_primal" validate:"gte=0"`
	EpsAbsDual                 float64       `yaml:"eps_abs_dual" validate:"gte=0"`
	EpsRel                     float64       `yaml:"eps_rel" validate:"gte=0"`
}

// Problem selects and sizes the synthetic problem solved by the command.
type Problem struct {
	Kind    string  `yaml:"kind" validate:"oneof=consensus lasso nnls"`
	Rows    int     `yaml:"rows" validate:"gte=1"`
	Cols    int     `yaml:"cols" validate:"gte=1"`
	Support int     `yaml:"support" validate:"gte=1,ltefield=Cols"`
	Noise   float64 `yaml:"noise" validate:"gte=0"`
	Reg     float64 `yaml:"reg" validate:"gte=0"`
	Seed    int64   `yaml:"seed"`
}

// Sweep lists the initial penalties tried by the sweep command.
type Sweep struct {
	Rhos    []float64 `yaml:"rhos" validate:"omitempty,dive,gt=0"`
	Workers int       `yaml:"workers" validate:"gte=0"`
}

// Default values for the problem and sweep sections.
const (
	DefaultKind    = "lasso"
	DefaultRows    = 100
	DefaultCols    = 30
	DefaultSupport = 5
	DefaultNoise   = 0.01
	DefaultReg     = 0.01
	DefaultWorkers = 4
)

// DefaultRhos is the sweep grid used when none is configured.
var DefaultRhos = []float64{0.01, 0.1, 1, 10, 100}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a File whose Solver section equals admm.DefaultParams().
func Default() File {
	return File{
		Solver: FromParams(admm.DefaultParams()),
		Problem: Problem{
			Kind:    DefaultKind,
			Rows:    DefaultRows,
			Cols:    DefaultCols,
			Support: DefaultSupport,
			Noise:   DefaultNoise,
			Reg:     DefaultReg,
		},
		Sweep: Sweep{
			Rhos:    append([]float64(nil), DefaultRhos...),
			Workers: DefaultWorkers,
		},
	}
}

// FromParams converts admm.Params to its YAML form.
func FromParams(p admm.Params) Solver {
	return Solver{
		MaxIterations:              p.MaxIterations,
		MaxComputationTime:         p.MaxComputationTime,
		Verbose:                    p.Verbose,
		Precision:                  p.Precision,
		LogIterates:                p.LogIterates,
		Rho:                        p.Rho,
		PenaltyAdaptation:          p.PenaltyAdaptation.String(),
		PenaltyAdaptationPeriod:    p.PenaltyAdaptationPeriod,
		PenaltyAdaptationWindow:    p.PenaltyAdaptationWindow,
		ResidualBalanceMu:          p.ResidualBalanceMu,
		ResidualBalanceTau:         p.ResidualBalanceTau,
		SpectralMinimumCorrelation: p.SpectralMinimumCorrelation,
		EpsAbsPrimal:               p.EpsAbsPrimal,
		EpsAbsDual:                 p.EpsAbsDual,
		EpsRel:                     p.EpsRel,
	}
}

// Load reads and parses the file at path.
//
// Errors:
//   - the *fs.PathError from os.ReadFile (wrapped) if path cannot be read.
//   - ErrParse, ErrInvalidConfig as for Parse.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, configErrorf(opLoad, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, configErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return f, nil
}

// Parse decodes data on top of Default() and validates the result.
// Unknown keys are rejected.
//
// Implementation:
//   - Stage 1: strict YAML decode over the defaults (empty input is allowed).
//   - Stage 2: struct-tag validation.
//   - Stage 3: File.Params, which runs admm.Params.Validate.
func Parse(data []byte) (File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, configErrorf(opParse, fmt.Errorf("%w: %v", ErrParse, err))
	}
	if err := f.Validate(); err != nil {
		return File{}, configErrorf(opParse, err)
	}
	if _, err := f.Params(); err != nil {
		return File{}, configErrorf(opParse, err)
	}

	return f, nil
}

// Validate checks the struct tags of every section.
func (f File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Params converts the solver section to admm.Params and validates it.
func (f File) Params() (admm.Params, error) {
	s := f.Solver
	mode, err := admm.ParseAdaptationMode(s.PenaltyAdaptation)
	if err != nil {
		return admm.Params{}, configErrorf(opParams, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	p := admm.Params{
		MaxIterations:              s.MaxIterations,
		MaxComputationTime:         s.MaxComputationTime,
		Verbose:                    s.Verbose,
		Precision:                  s.Precision,
		LogIterates:                s.LogIterates,
		Rho:                        s.Rho,
		PenaltyAdaptation:          mode,
		PenaltyAdaptationPeriod:    s.PenaltyAdaptationPeriod,
		PenaltyAdaptationWindow:    s.PenaltyAdaptationWindow,
		ResidualBalanceMu:          s.ResidualBalanceMu,
		ResidualBalanceTau:         s.ResidualBalanceTau,
		SpectralMinimumCorrelation: s.SpectralMinimumCorrelation,
		EpsAbsPrimal:               s.EpsAbsPrimal,
		EpsAbsDual:                 s.EpsAbsDual,
		EpsRel:                     s.EpsRel,
	}
	if err = p.Validate(); err != nil {
		return admm.Params{}, configErrorf(opParams, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}

	return p, nil
}

// Marshal renders f as YAML, e.g. to write a template with every key.
func Marshal(f File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
