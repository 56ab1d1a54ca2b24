// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/workload"
)

func TestReport(t *testing.T) {
	jobs := []*workload.Job{
		{
			Config: &workload.Config{Name: "a"},
			Result: &workload.Result{
				Name:      "a",
				Balancer:  "avl",
				Allocator: "heap",
				Inserts:   1234567,
				Rotations: 4321,
				Count:     1000,
				Height:    11,
				Duration:  1500 * time.Millisecond,
			},
		},
		{
			Config: &workload.Config{Name: "b"},
			Result: &workload.Result{Name: "b", Balancer: "redblack", Allocator: "pool", Interrupted: true},
		},
		{
			Config: &workload.Config{Name: "c", Balancer: "plain", Allocator: "heap"},
			Err:    fault.ErrModelMismatch,
		},
	}

	buffer := &bytes.Buffer{}
	failed := report(buffer, jobs)
	assert.Equal(t, 1, failed, "failed")

	s := buffer.String()
	assert.Contains(t, s, "1,234,567", "inserts")
	assert.Contains(t, s, "4,321", "rotations")
	assert.Contains(t, s, "1,000", "count")
	assert.Contains(t, s, "1.5s", "duration")
	assert.Contains(t, s, statusInterrupted, "interrupted")
	assert.Contains(t, s, statusFailed, "failed")
	assert.Contains(t, strings.ToLower(s), "total: 3 workloads  failed: 1", "footer")
}
