package knowledge

// Condition is one entry in the health condition catalog. Values are fixed
// at startup and shared read-only across requests.
type Condition struct {
	Name       string   `json:"-"`
	Symptoms   []string `json:"symptoms"`
	Prevention []string `json:"prevention"`
	Treatment  string   `json:"treatment"`
	Severity   string   `json:"severity"`
	Category   string   `json:"category"`
}

// Base is the immutable in-memory catalog. Conditions keep their load order;
// lookups go through the name index.
type Base struct {
	ordered []Condition
	byName  map[string]int
}

func NewBase(conditions []Condition) *Base {
	b := &Base{
		ordered: make([]Condition, len(conditions)),
		byName:  make(map[string]int, len(conditions)),
	}
	copy(b.ordered, conditions)
	for i, c := range b.ordered {
		b.byName[c.Name] = i
	}
	return b
}

// Default returns the catalog the service ships with.
func Default() *Base {
	return NewBase(seedConditions)
}

// Conditions returns the catalog in load order. Callers must not mutate the
// returned slice.
func (b *Base) Conditions() []Condition {
	out := make([]Condition, len(b.ordered))
	copy(out, b.ordered)
	return out
}

func (b *Base) Get(name string) (Condition, bool) {
	i, ok := b.byName[name]
	if !ok {
		return Condition{}, false
	}
	return b.ordered[i], true
}

func (b *Base) Len() int {
	return len(b.ordered)
}
