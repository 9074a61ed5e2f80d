package playground

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/playgrounds/internal/logger"
	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/sequences"
	"github.com/idilsaglam/playgrounds/internal/styling"
	"github.com/idilsaglam/playgrounds/internal/ui"
	"github.com/idilsaglam/playgrounds/internal/values"
)

// Demo is one runnable playground.
type Demo struct {
	Name  string
	Title string
	Run   func(p *ui.Printer) error
}

// Registry holds the demos in display order.
type Registry struct {
	demos []Demo
}

// NewRegistry returns the bundled demos. parser backs the demos that parse
// todo items; the errors demo builds its own from lggr so it can print the
// completion hook.
func NewRegistry(lggr logger.Logger, parser *model.Parser) *Registry {
	return &Registry{demos: []Demo{
		{
			Name:  "errors",
			Title: "Error handling with classified parse failures",
			Run:   func(p *ui.Printer) error { return ErrorHandling(p, lggr) },
		},
		{
			Name:  "styling",
			Title: "Composition with interfaces and embedded defaults",
			Run:   styling.Demo,
		},
		{
			Name:  "values",
			Title: "Value and reference semantics",
			Run:   func(p *ui.Printer) error { return values.Demo(p, parser) },
		},
		{
			Name:  "sequences",
			Title: "Higher-order functions: map, filter, flat-map",
			Run:   sequences.Demo,
		},
	}}
}

func (r *Registry) Demos() []Demo { return slices.Clone(r.demos) }

func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}
	return names
}

// Get looks a demo up by name.
func (r *Registry) Get(name string) (Demo, bool) {
	i := slices.IndexFunc(r.demos, func(d Demo) bool { return d.Name == name })
	if i < 0 {
		return Demo{}, false
	}
	return r.demos[i], true
}

// RunAll runs every demo in order and stops at the first error.
func (r *Registry) RunAll(p *ui.Printer) error {
	for _, d := range r.demos {
		p.Panel([]string{p.Theme().Title.Render(d.Title)})
		if err := d.Run(p); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		p.Println()
	}
	return nil
}
