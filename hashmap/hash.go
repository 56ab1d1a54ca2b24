// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashmap

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashFunc - 64 bit hash of a key
//
// keys that the map's compare function considers equal must have the
// same hash
type HashFunc[K any] func(key K) uint64

// Hash - xxhash of an ordered key
//
// integers hash their 64 bit two's complement value, so a named
// integer type hashes the same as the plain value; floats treat -0
// and +0 as equal and all NaNs as one value, matching cmp.Compare
func Hash[K cmp.Ordered](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint(uint64(k))
	}

	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat(v.Float())
	default:
		return xxhash.Sum64String(fmt.Sprint(key))
	}
}

func hashUint(u uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	return xxhash.Sum64(b[:])
}

func hashFloat(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return hashUint(math.Float64bits(math.NaN()))
	case 0 == f:
		return hashUint(0)
	}
	return hashUint(math.Float64bits(f))
}

// internal: scale a hash onto [0, n)
func scale(h uint64, n int) int {
	hi, _ := bits.Mul64(h, uint64(n))
	return int(hi)
}
