package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/crateful/wirecat/codec"
	"github.com/crateful/wirecat/ir"
)

// Verb is one of the operations a catalog entity supports.
type Verb int

const (
	VerbFetch Verb = iota
	VerbCreate
	VerbUpdate
	VerbDelete
)

func (v Verb) String() string {
	s, ok := map[Verb]string{
		VerbFetch:  "fetch",
		VerbCreate: "create",
		VerbUpdate: "update",
		VerbDelete: "delete",
	}[v]
	if ok {
		return s
	}
	return "<unknown verb>"
}

// Selector is the way a record is addressed on the wire.
type Selector int

const (
	ByID Selector = iota
	ByName
)

func (s Selector) String() string {
	if s == ByName {
		return "name"
	}
	return "id"
}

// Selectors is a set of Selector values.
type Selectors uint8

const (
	SelectID Selectors = 1 << iota
	SelectName

	SelectAny = SelectID | SelectName
)

func (s Selectors) Has(sel Selector) bool {
	if sel == ByName {
		return s&SelectName != 0
	}
	return s&SelectID != 0
}

// EntityType describes one kind of remote entity: where it lives, how
// its documents are tagged, how it is identified, and which operations
// the remote side permits per selector kind.
type EntityType struct {
	// Name is the registry key, e.g. "computer_groups".
	Name string
	// Endpoint is the logical path of the plural resource; defaults
	// to Name.
	Endpoint string
	// Singular and Plural are the wire tags wrapping one entity and
	// the listing document.
	Singular string
	Plural   string
	// IDField and NameField are the listing fields each entry must
	// carry; they default to "id" and "name".
	IDField   string
	NameField string
	// NamePath locates the display name inside a full entity
	// document; defaults to NameField.
	NamePath string
	// Ops is the policy table: permitted selectors per verb.  A verb
	// with no entry is forbidden.
	Ops map[Verb]Selectors
	// Hints are the plural hints applied when decoding this type's
	// documents.
	Hints *codec.Hint
	// Stub builds the minimal creation payload used when Create is
	// given none; nil means a bare name stub.
	Stub func() *ir.Node
}

func (t *EntityType) String() string {
	return t.Name
}

// Allows reports whether the policy table permits verb via sel.
func (t *EntityType) Allows(verb Verb, sel Selector) bool {
	return t.Ops[verb].Has(sel)
}

func (t *EntityType) endpoint() string {
	if t.Endpoint != "" {
		return t.Endpoint
	}
	return t.Name
}

func (t *EntityType) idField() string {
	if t.IDField != "" {
		return t.IDField
	}
	return "id"
}

func (t *EntityType) nameField() string {
	if t.NameField != "" {
		return t.NameField
	}
	return "name"
}

func (t *EntityType) namePath() string {
	if t.NamePath != "" {
		return t.NamePath
	}
	return t.nameField()
}

func (t *EntityType) stub() *ir.Node {
	if t.Stub != nil {
		return t.Stub()
	}
	body := ir.Object()
	body.SetField(t.nameField(), ir.FromString(randomToken()))
	res := ir.Object()
	res.SetField(t.Singular, body)
	return res
}

// Types is the entity type table, built at startup and keyed by name.
type Types struct {
	mu     sync.RWMutex
	byName map[string]*EntityType
}

func NewTypes() *Types {
	return &Types{byName: make(map[string]*EntityType)}
}

// Register adds an entity type to the table.
func (ts *Types) Register(t *EntityType) error {
	if t == nil {
		return fmt.Errorf("cannot register nil entity type")
	}
	if t.Name == "" || t.Singular == "" || t.Plural == "" {
		return fmt.Errorf("entity type must have a name and wire tags")
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.byName[t.Name]; exists {
		return fmt.Errorf("entity type %q already registered", t.Name)
	}
	ts.byName[t.Name] = t
	return nil
}

// Lookup finds an entity type by name, falling back to a
// case-insensitive pass.
func (ts *Types) Lookup(name string) (*EntityType, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if t, ok := ts.byName[name]; ok {
		return t, nil
	}
	lower := strings.ToLower(name)
	for k, t := range ts.byName {
		if strings.ToLower(k) == lower {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
}

// All returns the registered types sorted by name.
func (ts *Types) All() []*EntityType {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	res := make([]*EntityType, 0, len(ts.byName))
	for _, t := range ts.byName {
		res = append(res, t)
	}
	slices.SortFunc(res, func(a, b *EntityType) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}
