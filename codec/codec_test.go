package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crateful/wirecat/ir"
)

type decodeTest struct {
	name  string
	doc   string
	hints *Hint
	want  any
}

var decodeTests = []decodeTest{
	{
		name: "leaf text trimmed",
		doc:  `<building><name> HQ </name></building>`,
		want: map[string]any{"building": map[string]any{"name": "HQ"}},
	},
	{
		name: "empty leaf is null",
		doc:  `<building><name></name><id>2</id></building>`,
		want: map[string]any{"building": map[string]any{"name": nil, "id": "2"}},
	},
	{
		name: "self closing is null",
		doc:  `<building><city/><id>2</id></building>`,
		want: map[string]any{"building": map[string]any{"city": nil, "id": "2"}},
	},
	{
		name: "repetition makes a list",
		doc:  `<policy><pkg>a</pkg><pkg>b</pkg></policy>`,
		want: map[string]any{"policy": map[string]any{"pkg": []any{"a", "b"}}},
	},
	{
		name: "singleton stays scalar without hint",
		doc:  `<policy><pkg>a</pkg></policy>`,
		want: map[string]any{"policy": map[string]any{"pkg": "a"}},
	},
	{
		name: "size counter forces sibling mappings to list",
		doc:  `<computers><size>1</size><computer><id>1</id><name>a</name></computer></computers>`,
		want: map[string]any{"computers": map[string]any{
			"size":     "1",
			"computer": []any{map[string]any{"id": "1", "name": "a"}},
		}},
	},
	{
		name: "size counter leaves scalar siblings alone",
		doc:  `<general><size>1</size><name>a</name></general>`,
		want: map[string]any{"general": map[string]any{"size": "1", "name": "a"}},
	},
	{
		name: "hint forces singleton to list",
		doc:  `<computer><hardware><storage><disk>d0</disk></storage></hardware></computer>`,
		hints: Subtree(map[string]*Hint{
			"computer": Subtree(map[string]*Hint{
				"hardware": Subtree(map[string]*Hint{
					"storage": ListHint(),
				}),
			}),
		}),
		want: map[string]any{"computer": map[string]any{
			"hardware": map[string]any{
				"storage": []any{map[string]any{"disk": "d0"}},
			},
		}},
	},
	{
		name: "hint scope does not leak to other branches",
		doc:  `<computer><software><storage>s</storage></software></computer>`,
		hints: Subtree(map[string]*Hint{
			"computer": Subtree(map[string]*Hint{
				"hardware": Subtree(map[string]*Hint{
					"storage": ListHint(),
				}),
			}),
		}),
		want: map[string]any{"computer": map[string]any{
			"software": map[string]any{"storage": "s"},
		}},
	},
	{
		name: "size zero element dropped",
		doc:  `<computer><name>a</name><certificates><size>0</size></certificates></computer>`,
		want: map[string]any{"computer": map[string]any{"name": "a"}},
	},
	{
		name: "size zero kept as empty list under hint",
		doc:  `<computer><name>a</name><certificates><size>0</size></certificates></computer>`,
		hints: Subtree(map[string]*Hint{
			"computer": Subtree(map[string]*Hint{
				"certificates": ListHint(),
			}),
		}),
		want: map[string]any{"computer": map[string]any{
			"name":         "a",
			"certificates": []any{},
		}},
	},
	{
		name: "entity escapes decoded",
		doc:  `<script><name>a &amp; b &lt;c&gt;</name></script>`,
		want: map[string]any{"script": map[string]any{"name": "a & b <c>"}},
	},
}

func TestDecode(t *testing.T) {
	for _, tc := range decodeTests {
		t.Run(tc.name, func(t *testing.T) {
			var opts []DecodeOption
			if tc.hints != nil {
				opts = append(opts, DecodeHints(tc.hints))
			}
			got, err := Decode([]byte(tc.doc), opts...)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if d := cmp.Diff(tc.want, ir.ToAny(got)); d != "" {
				t.Errorf("decode mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, doc := range []string{"", "<a>", "<a></b>", "text only"} {
		if _, err := Decode([]byte(doc)); !errors.Is(err, ErrParse) {
			t.Errorf("Decode(%q) = %v, want ErrParse", doc, err)
		}
	}
}

func TestEncode(t *testing.T) {
	in := ir.Object()
	in.SetField("dock_item", func() *ir.Node {
		o := ir.Object()
		o.SetField("name", ir.FromString("Files & Folders"))
		o.SetField("contents", ir.Null())
		o.SetField("path", ir.FromSlice([]*ir.Node{
			ir.FromString("/a"),
			ir.FromString("/b"),
		}))
		return o
	}())
	got, err := Bytes(in)
	if err != nil {
		t.Fatal(err)
	}
	want := `<dock_item><name>Files &amp; Folders</name><contents/><path>/a</path><path>/b</path></dock_item>`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeBareListRejected(t *testing.T) {
	in := ir.FromSlice([]*ir.Node{ir.FromString("a")})
	if _, err := Bytes(in); !errors.Is(err, ErrUnsupportedStructure) {
		t.Errorf("got %v, want ErrUnsupportedStructure", err)
	}
	nested := ir.Object()
	nested.SetField("xs", ir.FromSlice([]*ir.Node{
		ir.FromSlice([]*ir.Node{ir.FromString("a")}),
	}))
	if _, err := Bytes(nested); !errors.Is(err, ErrUnsupportedStructure) {
		t.Errorf("got %v, want ErrUnsupportedStructure", err)
	}
}

// Round trip holds when no singleton is ambiguous: every list has more
// than one element and no size markers are present.
func TestRoundTrip(t *testing.T) {
	doc := `<policy><general><id>5</id><name>install</name></general>` +
		`<scope><computer>c1</computer><computer>c2</computer></scope></policy>`
	tree, err := Decode([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Bytes(tree)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tree, again) {
		t.Errorf("round trip mismatch: %s", cmp.Diff(ir.ToAny(tree), ir.ToAny(again)))
	}
}

func TestParseHints(t *testing.T) {
	h, err := ParseHints([]byte(`
computer:
  hardware:
    storage: []
  extension_attributes: []
profile:
  general:
    description: ""
`))
	if err != nil {
		t.Fatal(err)
	}
	st := h.child("computer").child("hardware").child("storage")
	if st == nil || !st.List {
		t.Error("storage should be a list hint")
	}
	if ea := h.child("computer").child("extension_attributes"); ea == nil || !ea.List {
		t.Error("extension_attributes should be a list hint")
	}
	if d := h.child("profile").child("general").child("description"); d == nil || !d.Str {
		t.Error("description should be a scalar hint")
	}
	if h.child("computer").child("software") != nil {
		t.Error("unhinted tag should have no child hint")
	}
}

func TestHintForcesScalar(t *testing.T) {
	doc := `<profile><general><description>a</description><description>b</description></general></profile>`
	hints := Subtree(map[string]*Hint{
		"profile": Subtree(map[string]*Hint{
			"general": Subtree(map[string]*Hint{
				"description": StrHint(),
			}),
		}),
	})
	got, err := Decode([]byte(doc), DecodeHints(hints))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"profile": map[string]any{
		"general": map[string]any{"description": "a"},
	}}
	if d := cmp.Diff(want, ir.ToAny(got)); d != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", d)
	}
}
