// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/bintree/bintree"
)

// Label - the balance factor for Print
func (Balancer[K, V]) Label(node *bintree.Node[K, V]) string {
	return fmt.Sprintf("%+2d", node.Balance())
}
