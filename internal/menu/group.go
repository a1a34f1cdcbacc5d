package menu

// group collects values under string keys, remembering first-seen key order.
type group[V any] struct {
	keys   []string
	values map[string][]V
}

func newGroup[V any]() *group[V] {
	return &group[V]{values: make(map[string][]V)}
}

func (g *group[V]) add(key string, v V) {
	if _, ok := g.values[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.values[key] = append(g.values[key], v)
}

// each visits keys in first-seen order. A nil group visits nothing.
func (g *group[V]) each(fn func(key string, values []V)) {
	if g == nil {
		return
	}
	for _, k := range g.keys {
		fn(k, g.values[k])
	}
}

// nestedGroup is a two-level group: outer key, then inner key.
type nestedGroup[V any] struct {
	outer map[string]*group[V]
}

func newNestedGroup[V any]() *nestedGroup[V] {
	return &nestedGroup[V]{outer: make(map[string]*group[V])}
}

func (n *nestedGroup[V]) add(outer, inner string, v V) {
	g, ok := n.outer[outer]
	if !ok {
		g = newGroup[V]()
		n.outer[outer] = g
	}
	g.add(inner, v)
}

// get returns the inner group for outer, or nil when nothing was added under it.
func (n *nestedGroup[V]) get(outer string) *group[V] {
	return n.outer[outer]
}
