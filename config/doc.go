// SPDX-License-Identifier: MIT

// Package config reads solver runs from YAML.
//
// A File mirrors admm.Params with snake_case keys and adds the synthetic
// problem and the penalty sweep used by the admm command. Keys missing from
// the document keep the values of Default(), so an empty file is valid.
//
//	solver:
//	  max_iterations: 500
//	  max_computation_time: 2s
//	  rho: 1
//	  penalty_adaptation: spectral
//	problem:
//	  kind: lasso
//	  rows: 200
//	  cols: 50
//	  support: 5
//	  reg: 0.01
//	sweep:
//	  rhos: [0.1, 1, 10]
//
// Validation runs in two stages: struct tags (go-playground/validator)
// catch out-of-range values per key, then admm.Params.Validate checks the
// combined solver settings.
package config
