// SPDX-License-Identifier: MIT
// Package: lpgen/simplex

package simplex

import "errors"

// ErrBasis is returned when no set of m independent columns of [A I] can be
// completed from the optimal point. It indicates numerical trouble.
var ErrBasis = errors.New("simplex: cannot complete basis")
