package model_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/idilsaglam/playgrounds/internal/logger"
	"github.com/idilsaglam/playgrounds/internal/model"
)

func TestParserProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	var notified int
	p := model.NewParser(logger.Nop(), model.WithHook(func(error) { notified++ }))

	properties.Property("well-typed records parse to equal fields", prop.ForAll(
		func(description string, completed bool, due *string) bool {
			raw := model.RawRecord{"description": description, "completed": completed}
			if due != nil {
				raw["due_on"] = *due
			}
			item, err := p.Parse(raw)
			if err != nil {
				return false
			}
			if item.Description() != description || item.Completed() != completed {
				return false
			}
			got, present := item.DueDate().Get()
			if due == nil {
				return !present
			}
			return present && got == *due
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != "" }),
		gen.Bool(),
		gen.PtrOf(gen.AlphaString()),
	))

	properties.Property("non-string description is rejected", prop.ForAll(
		func(description int, completed bool) bool {
			_, err := p.Parse(model.RawRecord{"description": description, "completed": completed})
			return errors.Is(err, model.ErrDescriptionInvalid)
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.Property("non-bool completed is rejected", prop.ForAll(
		func(description, completed string) bool {
			_, err := p.Parse(model.RawRecord{"description": description, "completed": completed})
			return errors.Is(err, model.ErrCompletedInvalid)
		},
		gen.Identifier(),
		gen.AlphaString(),
	))

	properties.Property("try form is present iff explicit form succeeds", prop.ForAll(
		func(description string, completed bool, dropCompleted bool) bool {
			raw := model.RawRecord{"description": description}
			if !dropCompleted {
				raw["completed"] = completed
			}
			_, err := p.Parse(raw)
			return p.TryParse(raw).IsPresent() == (err == nil)
		},
		gen.AlphaString(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("each call notifies exactly once", prop.ForAll(
		func(description string) bool {
			before := notified
			_, _ = p.Parse(model.RawRecord{"description": description})
			return notified == before+1
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
