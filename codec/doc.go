// Package codec converts between the catalog's attribute-free XML wire
// format and the generic IR tree.
//
// # Usage
//
//	node, err := codec.Decode(doc, codec.DecodeHints(hints))
//	if err != nil {
//	    return err
//	}
//	out, err := codec.Bytes(node)
//
// The wire format is ambiguous about lists: a tag occurring once may be
// a scalar or a one-element list.  Decode resolves the ambiguity from
// caller-supplied plural hints and, absent a hint, from structural
// heuristics (repetition, a sibling "size" counter).  Without full
// hints, decode-then-encode is lossy on singleton lists and on
// size-zero collection markers; that is a documented heuristic, not a
// bug.
//
// # Related Packages
//
//   - github.com/crateful/wirecat/ir - the tree representation
//   - github.com/crateful/wirecat/catalog - records bound to remote entities
package codec
