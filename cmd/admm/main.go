// SPDX-License-Identifier: MIT

// Command admm solves synthetic consensus, lasso and non-negative least
// squares problems with the admm package.
//
//	admm solve --config run.yaml --verbose
//	admm sweep --rhos 0.1,1,10 --metrics-file admm.prom
//	admm template > run.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "admm:", err)
		os.Exit(1)
	}
}
