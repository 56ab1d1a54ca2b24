// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bintree-check runs the workloads of a Lua configuration file
// concurrently, each one exercising a tree against the reference model,
// and prints a summary table.
//
//	bintree-check --config-file=bintree-check.conf [--workload=NAME...] [NAME=VALUE...]
//
// NAME=VALUE arguments become string globals in the configuration file.
package main
