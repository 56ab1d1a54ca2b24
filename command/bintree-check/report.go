// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bitmark-inc/bintree/workload"
)

// status column values
const (
	statusOK          = "ok"
	statusInterrupted = "interrupted"
	statusFailed      = "FAILED"
)

// write the summary table of all jobs, returns the number of failed jobs
func report(w io.Writer, jobs []*workload.Job) int {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{
		"workload", "balancer", "allocator",
		"inserts", "erases", "finds", "misses",
		"nodes", "height", "rotations", "alloc fail",
		"time", "status",
	})

	failed := 0
	for _, job := range jobs {
		status := statusOK
		if nil != job.Err {
			status = fmt.Sprintf("%s: %s", statusFailed, job.Err)
			failed += 1
		} else if nil != job.Result && job.Result.Interrupted {
			status = statusInterrupted
		}

		r := job.Result
		if nil == r {
			tbl.AppendRow(table.Row{job.Config.Name, job.Config.Balancer, job.Config.Allocator, "", "", "", "", "", "", "", "", "", status})
			continue
		}
		tbl.AppendRow(table.Row{
			r.Name, r.Balancer, r.Allocator,
			comma(r.Inserts), comma(r.Erases), comma(r.Finds), comma(r.Misses),
			humanize.Comma(int64(r.Count)), r.Height, comma(r.Rotations), comma(r.Failures),
			r.Duration.Round(time.Millisecond).String(),
			status,
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("total: %d workloads  failed: %d", len(jobs), failed)})
	fmt.Fprintln(w, tbl.Render())
	return failed
}

func comma(n uint64) string {
	return humanize.Comma(int64(n))
}
