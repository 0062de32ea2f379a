package selectlist

// markSet is an insertion-ordered set of items keyed by Identity.
type markSet[T Item] struct {
	order []int64
	byID  map[int64]T
}

func newMarkSet[T Item]() *markSet[T] {
	return &markSet[T]{byID: make(map[int64]T)}
}

func (m *markSet[T]) has(id int64) bool {
	_, ok := m.byID[id]
	return ok
}

// add keeps the first item seen for an identity
func (m *markSet[T]) add(item T) {
	id := item.Identity()
	if m.has(id) {
		return
	}
	m.byID[id] = item
	m.order = append(m.order, id)
}

func (m *markSet[T]) remove(id int64) {
	if !m.has(id) {
		return
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *markSet[T]) toggle(item T) {
	if id := item.Identity(); m.has(id) {
		m.remove(id)
		return
	}
	m.add(item)
}

func (m *markSet[T]) items() []T {
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}
