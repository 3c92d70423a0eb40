// SPDX-License-Identifier: MIT

package apsp

import "errors"

// ErrNegativeWeight is returned by Dijkstra when the graph holds a negative
// entry.
var ErrNegativeWeight = errors.New("apsp: negative edge weight")
