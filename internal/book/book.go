// Package book implements the address-book data model: validated phone and
// birthday fields, contact records, an insertion-ordered collection and the
// upcoming-birthday query.
package book

// AddressBook owns the mapping from contact name to Record.
// Iteration order is insertion order; Go maps do not iterate stably, so the
// order is tracked explicitly.
type AddressBook struct {
	order   []string
	records map[string]*Record
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts rec keyed by its name. An existing record under the same
// name is silently replaced (last write wins) and keeps its position in
// iteration order. Merging into an existing record is deliberately a caller
// responsibility.
func (b *AddressBook) AddRecord(rec *Record) {
	if _, exists := b.records[rec.Name]; !exists {
		b.order = append(b.order, rec.Name)
	}
	b.records[rec.Name] = rec
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name. Deleting an absent name is a
// no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}
