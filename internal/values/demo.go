package values

import (
	"fmt"

	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

// Demo contrasts pointer and value semantics, then toggles todo items
// without mutating them.
func Demo(p *ui.Printer, parser *model.Parser) error {
	p.Section("Reference types")
	taylor := NewPersonRef("Taylor Swift", 25)
	alias := taylor
	BirthdayRef(alias)
	p.Println("after BirthdayRef(alias):", taylor)
	p.Muted("the original aged too: both names point at one person")

	p.Section("Value types")
	you := Person{Name: "Gopher", Age: 38}
	older := Birthday(you)
	p.Println("original:", you)
	p.Println("birthday copy:", older)

	p.Section("Todo items are values")
	items, err := parser.ParseAll([]model.RawRecord{
		{"description": "Complete this tutorial", "due_on": "2015-07-08", "completed": false},
		{"description": "This tutorial is awesome", "due_on": nil, "completed": true},
	})
	if err != nil {
		return fmt.Errorf("parse items: %w", err)
	}

	toggled := ToggleAll(items)
	for i := range items {
		p.Printf("%s  ->  %s\n", items[i], toggled[i])
	}

	p.Section("Slices share backing arrays")
	view := items[:1]
	snapshot := Snapshot(items)
	ToggleInPlace(items)
	p.Println("slice of items:", view[0])
	p.Println("snapshot:      ", snapshot[0])
	return nil
}
