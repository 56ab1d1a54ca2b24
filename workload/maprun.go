// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"errors"
	"io"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/hashmap"
)

// the state of a running hash map workload
type mapRunner struct {
	state
	m *hashmap.Map[int, int]
}

// internal: the hash map form of Run
func runMap(config *Config, log *logger.L, printer io.Writer, shutdown <-chan struct{}) (*Result, error) {

	r, err := newMapRunner(config, log)
	if nil != err {
		return nil, err
	}

	start := time.Now()
	r.infof("start: hash map  allocator: %s  buckets: %d  seed: %d", config.Allocator, r.m.BucketCount(), config.Seed)

	err = r.exercise(shutdown)
	if nil == err {
		err = r.compareAll()
	}
	err = r.finish(printer, err)

	r.result.Duration = time.Since(start)
	if nil != err {
		return r.result, err
	}

	r.infof("finish: inserts: %d  erases: %d  finds: %d  buckets: %d  time: %s", r.result.Inserts, r.result.Erases, r.result.Finds, r.m.BucketCount(), r.result.Duration)
	return r.result, nil
}

func newMapRunner(config *Config, log *logger.L) (*mapRunner, error) {
	a, err := newAllocator(config, log)
	if nil != err {
		return nil, err
	}

	options := []hashmap.Option{
		hashmap.WithAllocator(a),
		hashmap.WithVerify(config.Verify),
	}
	if nil != log {
		options = append(options, hashmap.WithLogger(log))
	}

	// start small so the run goes through several rehashes
	m, err := hashmap.New[int, int](0, options...)
	if nil != err {
		return nil, err
	}

	return &mapRunner{
		state: newState(config, log, a, bintree.Replace),
		m:     m,
	}, nil
}

func (r *mapRunner) finish(printer io.Writer, err error) error {
	r.result.Count = r.m.Len()
	r.result.Height = r.m.Height()
	r.result.Rotations = r.m.Rotations()
	if nil != printer {
		r.m.Fprint(printer)
	}

	r.m.Clear()
	return r.collect(err)
}

func (r *mapRunner) exercise(shutdown <-chan struct{}) error {

	for i := 0; i < r.config.Keys; i += 1 {
		if err := r.insert(); nil != err {
			return err
		}
	}
	r.debugf("filled: %d entries  buckets: %d", r.m.Len(), r.m.BucketCount())

	for i := 0; i < r.config.Operations; i += 1 {
		select {
		case <-shutdown:
			r.result.Interrupted = true
			r.infof("interrupted after: %d operations", i)
			return nil
		default:
		}

		var err error
		switch n := r.random.Intn(100); {
		case n < 40:
			err = r.insert()
		case n < 70:
			err = r.erase()
		case n < 90:
			err = r.find()
		default:
			err = r.entry()
		}
		if nil != err {
			return err
		}
		if r.m.Len() != r.model.Len() {
			return r.mismatch("count: %d  expected: %d", r.m.Len(), r.model.Len())
		}
	}
	return nil
}

func (r *mapRunner) insert() error {
	k := r.key()
	v := r.random.Int()

	_, _, missing := r.model.Find(k)
	c, added, err := r.m.Insert(k, v)
	if errors.Is(err, fault.ErrAllocationFailure) {
		r.result.Failures += 1
		return nil
	}
	if nil != err {
		return r.mismatch("insert: %d  error: %v", k, err)
	}
	if added != (nil != missing) {
		return r.mismatch("insert: %d  added: %t  expected: %t", k, added, nil != missing)
	}
	if c.Key() != k || c.Value() != v {
		return r.mismatch("insert: %d  cursor at: %d, %d", k, c.Key(), c.Value())
	}
	_ = r.model.Insert(k, v)

	if added {
		r.result.Inserts += 1
	} else {
		r.result.Duplicates += 1
	}
	return nil
}

func (r *mapRunner) erase() error {
	k := r.key()

	v, err := r.m.Erase(k)
	ev, expected := r.model.Erase(k)
	if err != expected || v != ev {
		return r.mismatch("erase: %d  value: %d  error: %v  expected: %d, %v", k, v, err, ev, expected)
	}
	if nil == err {
		r.result.Erases += 1
	} else {
		r.result.Misses += 1
	}
	return nil
}

func (r *mapRunner) find() error {
	k := r.key()

	v, err := r.m.Get(k)
	ev, _, expected := r.model.Find(k)
	if err != expected || v != ev {
		return r.mismatch("find: %d  value: %d  error: %v  expected: %d, %v", k, v, err, ev, expected)
	}
	if nil == err {
		r.result.Finds += 1
	} else {
		r.result.Misses += 1
	}
	return nil
}

// internal: lookup that adds a zero entry for an absent key
func (r *mapRunner) entry() error {
	k := r.key()

	n, err := r.m.Entry(k)
	if errors.Is(err, fault.ErrAllocationFailure) {
		r.result.Failures += 1
		return nil
	}
	if nil != err {
		return r.mismatch("entry: %d  error: %v", k, err)
	}

	ev, _, absent := r.model.Find(k)
	if nil != absent {
		_ = r.model.Insert(k, 0)
		r.result.Inserts += 1
	} else {
		r.result.Finds += 1
	}
	if n.Key() != k || n.Value() != ev {
		return r.mismatch("entry: %d  found: %d, %d  expected value: %d", k, n.Key(), n.Value(), ev)
	}
	return nil
}

// internal: every entry against the model then the map's own checks
func (r *mapRunner) compareAll() error {
	type pair struct {
		key   int
		value int
	}
	pairs := make([]pair, 0, r.m.Len())
	for c := r.m.Begin(); c.Valid(); c.Advance() {
		pairs = append(pairs, pair{key: c.Key(), value: c.Value()})
	}
	slices.SortFunc(pairs, func(a pair, b pair) int {
		return a.key - b.key
	})

	entries := r.model.Entries()
	if len(pairs) != len(entries) {
		return r.mismatch("entries: %d  expected: %d", len(pairs), len(entries))
	}
	for i, p := range pairs {
		if p.key != entries[i].Key || p.value != entries[i].Value {
			return r.mismatch("[%d]: %d, %d  expected: %d, %d", i, p.key, p.value, entries[i].Key, entries[i].Value)
		}
	}

	if err := r.m.Check(); nil != err {
		if nil != r.log {
			r.log.Errorf("%s: check: %s", r.config.Name, err)
		}
		return err
	}
	return nil
}
