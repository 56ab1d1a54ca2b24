// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  The error
// classes can be tested with the IsErrXxx functions, which also
// recognise an instance that was wrapped with fmt.Errorf("…%w…").
//
// Broken tree invariants are not errors, they are defects, so they
// are reported with Panicf which logs to the PANIC channel before
// aborting.
package fault
