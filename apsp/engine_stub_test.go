// SPDX-License-Identifier: MIT

package apsp_test

import (
	"errors"

	"github.com/katalvlaran/minplus/matrix"
)

var errEngineDown = errors.New("engine down")

type failingEngine struct{}

func (failingEngine) Product(_, _ *matrix.Dense) (*matrix.Dense, error) { return nil, errEngineDown }

func (failingEngine) Name() string { return "failing" }
