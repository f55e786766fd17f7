/*
Package btree implements an in-memory, order-parameterized B-tree over
totally ordered keys.

B-Trees

A B-tree of order t keeps between t-1 and 2t-1 keys in every node but the
root, and an internal node with n keys has exactly n+1 children. All leaves
live at the same depth. This package supports insertion and point lookup;
keys are never removed.

Insertion works top-down in a single pass: whenever the descent is about to
enter a full node, that node is split first and its median key moves up into
the parent. Therefore no split ever has to travel back up the tree, and the
tree grows in height only when the root itself is split.

	tree, err := btree.New[int](3)
	if err != nil {
		...
	}
	tree.Set(10)
	tree.Set(5)
	if k, ok := tree.Get(5); ok {
		fmt.Printf("found %d\n", k)
	}

Trees are not safe for concurrent use. Callers sharing a tree between
goroutines have to serialize access to Set and Get themselves.

Set does not check for equal keys already present in the tree: inserting a
key twice will store it twice, adjacent to each other.

For debugging, a tree may be traversed node by node in pre-order (see
Tree.Nodes), exported to Graphviz (see ToDot), printed to a console (package
printer) or rendered as HTML (package html). Clients interested in the
structural changes of a tree may subscribe to split events (see Tree.Watch).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
