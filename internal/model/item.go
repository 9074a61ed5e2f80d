package model

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
)

// TodoItem is the domain model for a todo entry. Values are only produced
// by a Parser; fields are read through accessors and never change.
type TodoItem struct {
	description string
	dueDate     mo.Option[string]
	completed   bool
}

func (t TodoItem) Description() string         { return t.description }
func (t TodoItem) DueDate() mo.Option[string] { return t.dueDate }
func (t TodoItem) Completed() bool            { return t.completed }

// WithCompleted returns a copy of t with the completed flag set to done.
func (t TodoItem) WithCompleted(done bool) TodoItem {
	t.completed = done
	return t
}

// Toggled returns a copy of t with the completed flag flipped.
func (t TodoItem) Toggled() TodoItem {
	return t.WithCompleted(!t.completed)
}

func (t TodoItem) String() string {
	due := "nil"
	if d, ok := t.dueDate.Get(); ok {
		due = fmt.Sprintf("%q", d)
	}
	return fmt.Sprintf("TodoItem(description: %q, dueDate: %s, completed: %t)",
		t.description, due, t.completed)
}

// wireItem is the payload shape accepted by Parse.
type wireItem struct {
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	DueOn       *string `json:"due_on"`
}

// MarshalJSON renders t in the raw payload shape so it can be parsed back.
func (t TodoItem) MarshalJSON() ([]byte, error) {
	w := wireItem{Description: t.description, Completed: t.completed}
	if d, ok := t.dueDate.Get(); ok {
		w.DueOn = &d
	}
	return json.Marshal(w)
}
