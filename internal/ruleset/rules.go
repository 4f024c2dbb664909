package ruleset

// Rules is an ordered mapping from rule name to Value. The zero value is an
// empty table. Rules is immutable: Set and Merge return new tables.
type Rules struct {
	names  []string
	values map[string]Value
}

// Entry is one name/value pair, used to build tables in order.
type Entry struct {
	Name  string
	Value Value
}

// NewRules builds a table; a repeated name overwrites the earlier value in
// place.
func NewRules(entries ...Entry) Rules {
	r := Rules{}
	for _, e := range entries {
		r = r.Set(e.Name, e.Value)
	}
	return r
}

// Set returns a copy of r with name bound to v.
func (r Rules) Set(name string, v Value) Rules {
	out := r.clone(1)
	if _, ok := out.values[name]; !ok {
		out.names = append(out.names, name)
	}
	out.values[name] = v
	return out
}

// Get returns the value for name.
func (r Rules) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns rule names in insertion order.
func (r Rules) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of rules.
func (r Rules) Len() int {
	return len(r.names)
}

// Entries returns the table in order.
func (r Rules) Entries() []Entry {
	out := make([]Entry, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, Entry{Name: n, Value: r.values[n]})
	}
	return out
}

// Merge returns the union of r and other. For duplicate names the value from
// other wins and the name keeps its position from r.
func (r Rules) Merge(other Rules) Rules {
	out := r.clone(other.Len())
	for _, n := range other.names {
		if _, ok := out.values[n]; !ok {
			out.names = append(out.names, n)
		}
		out.values[n] = other.values[n]
	}
	return out
}

func (r Rules) clone(extra int) Rules {
	out := Rules{
		names:  make([]string, len(r.names), len(r.names)+extra),
		values: make(map[string]Value, len(r.names)+extra),
	}
	copy(out.names, r.names)
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}
