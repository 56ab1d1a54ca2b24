// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap_test

import (
	"cmp"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/hashmap"
)

const (
	testingDirName = "testing"
	category       = "hashmap-test"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// every key lands in bucket zero so iteration is in key order
func collide(int) uint64 {
	return 0
}

func newColliding(t *testing.T, keys ...int) *hashmap.Map[int, string] {
	m, err := hashmap.NewWithHash[int, string](0, collide, cmp.Compare[int], hashmap.WithVerify(true))
	require.Nil(t, err, "new")
	for _, k := range keys {
		_, added, err := m.Insert(k, "v")
		require.Nil(t, err, "insert: %d", k)
		require.True(t, added, "added: %d", k)
	}
	return m
}

func forward(m *hashmap.Map[int, string]) []int {
	keys := []int{}
	for c := m.Begin(); c.Valid(); c.Advance() {
		keys = append(keys, c.Key())
	}
	return keys
}

func TestNew(t *testing.T) {
	log := logger.New(category)

	for _, item := range []struct {
		estimated int
		buckets   int
	}{
		{0, 16},
		{1, 16},
		{12, 32},
		{100, 256},
		{1000, 2048},
	} {
		m, err := hashmap.New[int, string](item.estimated, hashmap.WithLogger(log))
		require.Nil(t, err, "new: %d", item.estimated)
		assert.Equal(t, item.buckets, m.BucketCount(), "buckets for: %d", item.estimated)
		assert.True(t, m.IsEmpty(), "empty")
		assert.Equal(t, 0, m.Occupied(), "occupied")
		assert.Nil(t, m.Check(), "check")
	}
}

func TestNewErrors(t *testing.T) {
	_, err := hashmap.New[int, string](-1)
	assert.Equal(t, fault.ErrInvalidCount, err, "negative estimate")

	_, err = hashmap.NewWithHash[int, string](0, nil, cmp.Compare[int])
	assert.Equal(t, fault.ErrMissingHash, err, "nil hash")

	_, err = hashmap.NewWithHash[int, string](0, hashmap.Hash[int], nil)
	assert.Equal(t, fault.ErrMissingCompare, err, "nil compare")

	_, err = hashmap.New[int, string](0, hashmap.WithAllocator("heap"))
	assert.Equal(t, fault.ErrInvalidAllocator, err, "wrong allocator type")
}
