package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/crateful/wirecat/debug"
	"github.com/crateful/wirecat/ir"
)

type DecodeOption func(*decState)

type decState struct {
	hints *Hint
}

// DecodeHints supplies the plural hints for this document; the hint
// tree is keyed from the document's root tag down.
func DecodeHints(h *Hint) DecodeOption {
	return func(ds *decState) { ds.hints = h }
}

// Decode parses a wire document into a tree.  The result is an object
// mapping the document's root tag to the decoded value.
//
// A tag under one parent maps to a single value when exactly one
// instance occurred and neither a plural hint nor a sibling "size"
// counter forces list decoding; otherwise it maps to an array, one
// entry per occurrence.  An element decoding to a lone size field equal
// to zero, the wire convention for an empty collection, is dropped from
// its parent before grouping; callers who must distinguish an empty
// list from an absent field can hint the tag as a list instead.  A leaf
// decodes to its trimmed text, or null when the text is empty.
func Decode(doc []byte, opts ...DecodeOption) (*ir.Node, error) {
	ds := &decState{}
	for _, opt := range opts {
		opt(ds)
	}
	root, err := parseDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if debug.Codec() {
		debug.Logf("decode <%s> (%d bytes)\n", root.tag, len(doc))
	}
	res := ir.Object()
	res.SetField(root.tag, decodeElement(root, ds.hints.child(root.tag)))
	return res, nil
}

type element struct {
	tag      string
	text     strings.Builder
	children []*element
}

func parseDocument(doc []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	var (
		root  *element
		stack []*element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{tag: t.Name.Local}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.children = append(top.children, el)
			} else {
				if root != nil {
					return nil, fmt.Errorf("multiple document elements")
				}
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("no document element")
	}
	return root, nil
}

func decodeElement(el *element, h *Hint) *ir.Node {
	if len(el.children) == 0 {
		text := strings.TrimSpace(el.text.String())
		if text == "" {
			return ir.Null()
		}
		return ir.FromString(text)
	}

	hasSize := false
	for _, child := range el.children {
		if child.tag == "size" {
			hasSize = true
			break
		}
	}

	type group struct {
		tag  string
		vals []*ir.Node
	}
	var groups []*group
	idx := map[string]*group{}
	for _, child := range el.children {
		ch := h.child(child.tag)
		v := decodeElement(child, ch)
		g := idx[child.tag]
		if isEmptyCounter(v) {
			// a list hint keeps the tag as an empty array instead
			if ch == nil || !ch.List {
				continue
			}
			v = nil
		}
		if g == nil {
			g = &group{tag: child.tag}
			groups = append(groups, g)
			idx[child.tag] = g
		}
		if v != nil {
			g.vals = append(g.vals, v)
		}
	}

	res := ir.Object()
	for _, g := range groups {
		ch := h.child(g.tag)
		switch {
		case ch != nil && ch.Str:
			res.SetField(g.tag, g.vals[0])
		case ch != nil && ch.List:
			res.SetField(g.tag, ir.FromSlice(g.vals))
		case len(g.vals) > 1 || (hasSize && g.vals[0].Type == ir.ObjectType):
			res.SetField(g.tag, ir.FromSlice(g.vals))
		default:
			res.SetField(g.tag, g.vals[0])
		}
	}
	return res
}

// isEmptyCounter recognizes the sentinel shape of an empty collection,
// an element whose only child is a zero size counter.
func isEmptyCounter(v *ir.Node) bool {
	if v == nil || v.Type != ir.ObjectType || len(v.Fields) != 1 {
		return false
	}
	return v.Fields[0] == "size" && v.Values[0].Text() == "0"
}
