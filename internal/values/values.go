package values

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/playgrounds/internal/model"
)

// Person is passed by value: every call receives its own copy.
type Person struct {
	Name string
	Age  int
}

func (p Person) String() string { return fmt.Sprintf("Name: %s, Age: %d", p.Name, p.Age) }

// Birthday returns p one year older. The caller's Person is untouched.
func Birthday(p Person) Person {
	p.Age++
	return p
}

// PersonRef is shared through a pointer: every holder sees the same person.
type PersonRef struct {
	name string
	Age  int
}

func NewPersonRef(name string, age int) *PersonRef { return &PersonRef{name: name, Age: age} }

func (p *PersonRef) Name() string   { return p.name }
func (p *PersonRef) String() string { return fmt.Sprintf("Name: %s, Age: %d", p.name, p.Age) }

// BirthdayRef ages the person p points at, so the caller sees the change.
func BirthdayRef(p *PersonRef) {
	p.Age++
}

// ToggleAll returns a new slice holding a toggled copy of each item.
func ToggleAll(items []model.TodoItem) []model.TodoItem {
	out := make([]model.TodoItem, len(items))
	for i, it := range items {
		out[i] = it.Toggled()
	}
	return out
}

// ToggleInPlace replaces each element of items with its toggled copy. The
// items themselves are never mutated, but the backing array is, so every
// slice sharing it sees the new values.
func ToggleInPlace(items []model.TodoItem) {
	for i := range items {
		items[i] = items[i].Toggled()
	}
}

// Snapshot copies items into a fresh backing array.
func Snapshot(items []model.TodoItem) []model.TodoItem {
	return slices.Clone(items)
}
