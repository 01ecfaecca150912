package domain

// Predicate is a named relation with an ordered argument list.
// It is used both for schema declarations and for ground facts/goal terms.
type Predicate struct {
	// Raw is the exact parenthesized text, e.g. "(At ?o ?l)".
	Raw  string
	Name string
	Args []string

	// Comment is the trailing same-line comment of a schema declaration (optional).
	Comment string
}

// Arity is the number of arguments. Schema parsing never enforces it.
func (p Predicate) Arity() int {
	return len(p.Args)
}

// Action is an operation template with parameters, preconditions and effects.
type Action struct {
	Raw  string
	Name string

	// Parameters is the raw parameter-list text, e.g. "(?r ?o ?l)".
	Parameters string

	Precondition []Predicate
	Effect       []Predicate
}

// Domain is a parsed domain definition.
//
// Predicates and Actions keep every declaration in source order.
// The lookups resolve duplicate names to the last declaration.
type Domain struct {
	Name string
	Raw  string

	// PredicatesText is the whole "(:predicates ...)" section.
	PredicatesText string

	Predicates []Predicate
	Actions    []Action

	predicateIdx map[string]int
	actionIdx    map[string]int
}

// NewDomain builds a Domain and its name indexes.
func NewDomain(name, raw, predicatesText string, preds []Predicate, actions []Action) Domain {
	d := Domain{
		Name:           name,
		Raw:            raw,
		PredicatesText: predicatesText,
		Predicates:     preds,
		Actions:        actions,
		predicateIdx:   make(map[string]int, len(preds)),
		actionIdx:      make(map[string]int, len(actions)),
	}
	for i, p := range preds {
		d.predicateIdx[p.Name] = i
	}
	for i, a := range actions {
		d.actionIdx[a.Name] = i
	}
	return d
}

// Predicate returns the predicate declared under name.
func (d Domain) Predicate(name string) (Predicate, bool) {
	i, ok := d.predicateIdx[name]
	if !ok {
		return Predicate{}, false
	}
	return d.Predicates[i], true
}

// Action returns the action declared under name.
func (d Domain) Action(name string) (Action, bool) {
	i, ok := d.actionIdx[name]
	if !ok {
		return Action{}, false
	}
	return d.Actions[i], true
}

// ObjectDecl is one typed object symbol.
type ObjectDecl struct {
	Symbol string
	Type   string
}

// Problem is a parsed problem definition.
type Problem struct {
	Name       string
	DomainName string
	Raw        string

	ObjectsText string
	Objects     []ObjectDecl

	InitText string
	Init     []Predicate

	GoalText string
	Goal     []Predicate
}

// ObjectsOfType returns the symbols declared with the given type, in order.
func (p Problem) ObjectsOfType(typ string) []string {
	var out []string
	for _, o := range p.Objects {
		if o.Type == typ {
			out = append(out, o.Symbol)
		}
	}
	return out
}

// DocumentKind tells domain and problem documents apart.
type DocumentKind string

const (
	DocumentDomain  DocumentKind = "domain"
	DocumentProblem DocumentKind = "problem"
)

// Document is a declarative text loaded from a source.
type Document struct {
	Kind DocumentKind
	Name string
	Path string
	Text string
}

// DocumentRef is a lightweight reference to a document on disk.
type DocumentRef struct {
	Kind DocumentKind
	Name string
	Path string
}
