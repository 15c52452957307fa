// Package ir holds the generic in-memory tree produced by decoding wire
// documents.
//
// A Node is a null, a string scalar, an object mapping tag names to child
// nodes, or an array of nodes.  Objects keep their fields in wire order.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	})
//	v, err := ir.Get(node, "name")
//
// Path expressions over nodes use '/'-separated segments with optional
// equality filter segments, see Get and Set.
//
// # Related Packages
//
//   - github.com/crateful/wirecat/codec - wire documents <-> IR
//   - github.com/crateful/wirecat/catalog - records bound to remote entities
package ir
