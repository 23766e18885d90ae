package mechanics

import (
	"sort"
	"sync"
)

// Store provides read access to the spell and magic effect records.
type Store interface {
	// Spells returns every spell record ordered by ID.
	//
	// Returns:
	//   - []*Spell: the spells in ascending ID order
	Spells() []*Spell

	// Spell looks up a spell by ID.
	//
	// Parameters:
	//   - id: the spell ID
	//
	// Returns:
	//   - *Spell: the spell, or nil if not found
	Spell(id string) *Spell

	// MagicEffect looks up a magic effect by ID.
	//
	// Parameters:
	//   - id: the effect ID
	//
	// Returns:
	//   - *MagicEffect: the effect, or nil if not found
	MagicEffect(id int) *MagicEffect
}

// MemoryStore is an in-memory Store. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	spells  map[string]*Spell
	ordered []*Spell
	effects map[int]*MagicEffect
}

var _ Store = &MemoryStore{}

// NewMemoryStore creates an empty MemoryStore.
//
// Returns:
//   - *MemoryStore: the new store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		spells:  make(map[string]*Spell),
		effects: make(map[int]*MagicEffect),
	}
}

// AddSpell inserts or replaces a spell record. Nil is ignored.
func (m *MemoryStore) AddSpell(s *Spell) {
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spells[s.ID] = s
	m.ordered = nil
}

// AddMagicEffect inserts or replaces a magic effect record. Nil is ignored.
func (m *MemoryStore) AddMagicEffect(e *MagicEffect) {
	if e == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effects[e.ID] = e
}

func (m *MemoryStore) Spells() []*Spell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ordered == nil {
		m.ordered = make([]*Spell, 0, len(m.spells))
		for _, s := range m.spells {
			m.ordered = append(m.ordered, s)
		}
		sort.Slice(m.ordered, func(i, j int) bool { return m.ordered[i].ID < m.ordered[j].ID })
	}
	return append([]*Spell(nil), m.ordered...)
}

func (m *MemoryStore) Spell(id string) *Spell {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.spells[id]
}

func (m *MemoryStore) MagicEffect(id int) *MagicEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.effects[id]
}
