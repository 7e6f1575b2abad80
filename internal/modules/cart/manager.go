package cart

import (
	"sync"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
)

// FeedbackFunc is fired after a successful add. It is the counter-side
// scanner beep: purely cosmetic, never consulted by the pricing logic.
type FeedbackFunc func()

// Manager exclusively owns the working line collection. Checkout takes a
// snapshot via Lines; nothing else mutates the cart.
type Manager struct {
	mu    sync.Mutex
	lines []Line
	onAdd FeedbackFunc
}

// NewManager creates an empty cart. onAdd may be nil.
func NewManager(onAdd FeedbackFunc) *Manager {
	return &Manager{onAdd: onAdd}
}

// AddSimple adds one unit of a per-unit item. An existing simple line for the
// same item id absorbs the unit; otherwise a new line with qty 1 is appended.
func (m *Manager) AddSimple(item catalog.Item) Line {
	m.mu.Lock()
	for i := range m.lines {
		if m.lines[i].Kind == LineSimple && m.lines[i].Item.ID == item.ID {
			m.lines[i].Qty++
			line := m.lines[i]
			m.mu.Unlock()
			m.feedback()
			return line
		}
	}
	line := NewSimple(item, 1)
	m.lines = append(m.lines, line)
	m.mu.Unlock()
	m.feedback()
	return line
}

// AddCustom appends an area-priced line. Dimensioned lines are never merged,
// even for the same item: each add is its own line with its own id.
func (m *Manager) AddCustom(item catalog.Item, length, width float64, qty int) (Line, error) {
	line, err := NewDimensioned(item, length, width, qty)
	if err != nil {
		return Line{}, err
	}
	m.mu.Lock()
	m.lines = append(m.lines, line)
	m.mu.Unlock()
	m.feedback()
	return line, nil
}

// Remove deletes the line at index. Out-of-range indexes report NotFound
// rather than silently doing nothing.
func (m *Manager) Remove(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.lines) {
		return apierr.NotFound("no cart line at index %d", index)
	}
	m.lines = append(m.lines[:index], m.lines[index+1:]...)
	return nil
}

// Clear empties the cart. Used after checkout confirmation.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
}

// Lines returns a read-only snapshot of the collection.
func (m *Manager) Lines() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out
}

// Len reports the number of lines. Zero gates whether checkout is reachable.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Total computes the running cart total.
func (m *Manager) Total() int {
	return CartTotal(m.Lines())
}

func (m *Manager) feedback() {
	if m.onAdd != nil {
		m.onAdd()
	}
}
