// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"
)

// hostInfo is logged next to timings so speedups can be read against the
// hardware they were measured on.
type hostInfo struct {
	Logical  int
	Physical int
	Model    string
}

func probeHost(log *zap.Logger) hostInfo {
	h := hostInfo{Logical: runtime.NumCPU()}
	if n, err := cpu.Counts(true); err != nil {
		log.Debug("logical cpu count unavailable", zap.Error(err))
	} else if n > 0 {
		h.Logical = n
	}
	if n, err := cpu.Counts(false); err != nil {
		log.Debug("physical cpu count unavailable", zap.Error(err))
	} else {
		h.Physical = n
	}
	if infos, err := cpu.Info(); err != nil {
		log.Debug("cpu info unavailable", zap.Error(err))
	} else if len(infos) > 0 {
		h.Model = infos[0].ModelName
	}

	return h
}

func (h hostInfo) fields() []zap.Field {
	return []zap.Field{
		zap.String("cpu", h.Model),
		zap.Int("logical", h.Logical),
		zap.Int("physical", h.Physical),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
	}
}
