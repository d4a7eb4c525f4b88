package inputsettings

// Entity identifies an item of a SegmentedModel. Ids are never reused.
type Entity uint32

type segment struct {
	entity Entity
	label  string
}

// SegmentedModel is an ordered list of labelled items with one active item,
// mirroring a segmented button in the settings UI.
type SegmentedModel struct {
	items  []segment
	active Entity
	next   Entity
}

func NewSegmentedModel(labels ...string) *SegmentedModel {
	m := &SegmentedModel{next: 1}
	for _, l := range labels {
		m.Insert(l)
	}
	return m
}

// Insert appends an item. The first inserted item becomes active.
func (m *SegmentedModel) Insert(label string) Entity {
	e := m.next
	m.next++
	m.items = append(m.items, segment{entity: e, label: label})
	if len(m.items) == 1 {
		m.active = e
	}
	return e
}

// Activate makes entity active. Unknown entities are ignored.
func (m *SegmentedModel) Activate(entity Entity) {
	for _, it := range m.items {
		if it.entity == entity {
			m.active = entity
			return
		}
	}
}

func (m *SegmentedModel) Active() Entity {
	return m.active
}

func (m *SegmentedModel) EntityAt(position int) (Entity, bool) {
	if position < 0 || position >= len(m.items) {
		return 0, false
	}
	return m.items[position].entity, true
}

func (m *SegmentedModel) Label(entity Entity) string {
	for _, it := range m.items {
		if it.entity == entity {
			return it.label
		}
	}
	return ""
}

// NewPrimaryButtonModel returns the two-segment model used for primary button
// selection. Position 1 is the left-handed slot.
func NewPrimaryButtonModel() *SegmentedModel {
	return NewSegmentedModel("Left", "Right")
}
