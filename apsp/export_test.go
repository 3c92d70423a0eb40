// SPDX-License-Identifier: MIT

package apsp

// WithSpawner exposes the pool factory override to apsp_test.
var WithSpawner = withSpawner
