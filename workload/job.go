// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"io"

	"github.com/bitmark-inc/logger"
)

// Job - a workload run as a background.Process
type Job struct {
	Config  *Config
	Log     *logger.L
	Printer io.Writer

	Result *Result
	Err    error
}

// Run - run the workload, shutdown interrupts it
func (job *Job) Run(args interface{}, shutdown <-chan struct{}) {
	job.Result, job.Err = Run(job.Config, job.Log, job.Printer, shutdown)
}
