// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strings"

	"github.com/bitmark-inc/bintree/avl"
	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/redblack"
)

// allocator names
const (
	HeapAllocator = "heap"
	PoolAllocator = "pool"
)

// container names other than the tree balancers
const (
	PlainBalancer   = "plain"   // unbalanced tree
	HashMapBalancer = "hashmap" // xxhash map of red-black buckets
)

// defaults for unset values
const (
	DefaultKeys       = 1000
	DefaultKeySpace   = 4000
	DefaultOperations = 10000
)

// Config - one workload
type Config struct {
	Name       string `gluamapper:"name" json:"name"`
	Balancer   string `gluamapper:"balancer" json:"balancer"`
	Allocator  string `gluamapper:"allocator" json:"allocator"`
	PoolPieces int    `gluamapper:"pool_pieces" json:"pool_pieces"`
	PoolBlocks int    `gluamapper:"pool_blocks" json:"pool_blocks"`
	Duplicates string `gluamapper:"duplicates" json:"duplicates"`
	Keys       int    `gluamapper:"keys" json:"keys"`
	KeySpace   int    `gluamapper:"key_space" json:"key_space"`
	Operations int    `gluamapper:"operations" json:"operations"`
	Seed       int64  `gluamapper:"seed" json:"seed"`
	Verify     bool   `gluamapper:"verify" json:"verify"`
}

// Balancers - the policy names accepted by Config.Balancer
func Balancers() []string {
	return []string{avl.Name, redblack.Name, PlainBalancer}
}

// Containers - every name accepted by Config.Balancer
func Containers() []string {
	return append(Balancers(), HashMapBalancer)
}

// Validate - fill in defaults and check every value
func (config *Config) Validate() error {
	config.Balancer = strings.ToLower(strings.TrimSpace(config.Balancer))
	if "" == config.Balancer {
		config.Balancer = avl.Name
	}
	switch config.Balancer {
	case avl.Name, redblack.Name, PlainBalancer, HashMapBalancer:
	default:
		return fault.ErrInvalidBalancer
	}

	config.Allocator = strings.ToLower(strings.TrimSpace(config.Allocator))
	if "" == config.Allocator {
		config.Allocator = HeapAllocator
	}
	switch config.Allocator {
	case HeapAllocator, PoolAllocator:
	default:
		return fault.ErrInvalidAllocator
	}
	if config.PoolPieces < 0 || config.PoolBlocks < 0 {
		return fault.ErrInvalidPoolSize
	}

	// a map keeps one entry per key and updates it on insert
	if HashMapBalancer == config.Balancer && "" == strings.TrimSpace(config.Duplicates) {
		config.Duplicates = bintree.Replace.String()
	}
	d, err := bintree.ParseDuplicates(strings.TrimSpace(config.Duplicates))
	if nil != err {
		return err
	}
	if HashMapBalancer == config.Balancer && bintree.Replace != d {
		return fault.ErrInvalidDuplicates
	}
	config.Duplicates = d.String()

	if 0 == config.Keys {
		config.Keys = DefaultKeys
	}
	if 0 == config.KeySpace {
		config.KeySpace = DefaultKeySpace
	}
	if 0 == config.Operations {
		config.Operations = DefaultOperations
	}
	if config.Keys < 0 || config.KeySpace < 0 || config.Operations < 0 {
		return fault.ErrInvalidCount
	}

	if "" == config.Name {
		config.Name = config.Balancer + "-" + config.Allocator
	}
	return nil
}
