// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of processes in their own go
// routines with a common shutdown
package background

import (
	"sync"
)

// the shutdown and completed channels for a process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started set of processes
type T struct {
	s    []shutdown
	once sync.Once
	done chan struct{}
}

// Process - a background process: it returns when its work is
// complete or soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s:    make([]shutdown, len(processes)),
		done: make(chan struct{}),
	}

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished
		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}

	go func() {
		for _, s := range register.s {
			<-s.finished
		}
		close(register.done)
	}()

	return register
}

// Done - closed once every process has returned
func (t *T) Done() <-chan struct{} {
	return t.done
}

// Stop - signal all processes to shut down and wait for them
func (t *T) Stop() {

	// shutdown all background tasks
	t.once.Do(func() {
		for _, s := range t.s {
			close(s.shutdown)
		}
	})

	<-t.done
}
