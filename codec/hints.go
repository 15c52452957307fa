package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Hint disambiguates list-vs-scalar decoding for the tags beneath one
// parent tag.  A hint either forces a tag to decode as a list even when
// a single instance occurred, forces it to stay scalar regardless of
// repetition, or carries child hints for deeper tags.  Hint propagation
// is per tag: decoding descends only into the matching child hint.
//
// A forced-scalar tag that repeats keeps its first instance; the
// catalog never emits that shape for hinted tags.
type Hint struct {
	List     bool
	Str      bool
	Children map[string]*Hint
}

// ListHint forces list decoding.
func ListHint() *Hint {
	return &Hint{List: true}
}

// StrHint forces scalar decoding.
func StrHint() *Hint {
	return &Hint{Str: true}
}

// Subtree builds a hint carrying child hints.
func Subtree(children map[string]*Hint) *Hint {
	return &Hint{Children: children}
}

func (h *Hint) child(tag string) *Hint {
	if h == nil {
		return nil
	}
	return h.Children[tag]
}

// ParseHints loads a hint tree from a YAML document.  A YAML sequence
// value forces list decoding for its tag, a string value forces scalar
// decoding, and a mapping declares child hints:
//
//	computer:
//	  hardware:
//	    storage: []
//	  extension_attributes: []
func ParseHints(doc []byte) (*Hint, error) {
	var v any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("hints: %w", err)
	}
	return hintFromAny(v)
}

func hintFromAny(v any) (*Hint, error) {
	switch x := v.(type) {
	case nil:
		return &Hint{}, nil
	case string:
		return StrHint(), nil
	case []any:
		return ListHint(), nil
	case map[string]any:
		h := &Hint{Children: make(map[string]*Hint, len(x))}
		for tag, cv := range x {
			ch, err := hintFromAny(cv)
			if err != nil {
				return nil, err
			}
			h.Children[tag] = ch
		}
		return h, nil
	default:
		return nil, fmt.Errorf("hints: cannot interpret %T as a hint", v)
	}
}
