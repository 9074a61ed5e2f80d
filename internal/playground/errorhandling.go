package playground

import (
	"errors"

	"github.com/idilsaglam/playgrounds/internal/logger"
	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

// Messy data as it might arrive from an API after decoding.
var (
	todoItemRecord = model.RawRecord{
		"completed":   false,
		"due_on":      "2015-07-08",
		"description": "Facebook app and contest",
	}
	badRecord = model.RawRecord{"badDataTroll": "😈"}
)

// ErrorHandling walks through the parser's failure modes.
func ErrorHandling(p *ui.Printer, lggr logger.Logger) error {
	parser := model.NewParser(lggr, model.WithHook(func(error) {
		p.Muted("parsing complete!")
	}))

	p.Section("Explicit handling")
	reportExplicit(p, parser, todoItemRecord)

	p.Section("Invalid data")
	reportExplicit(p, parser, badRecord)

	p.Section("Per-field errors")
	for _, raw := range []model.RawRecord{
		{"description": 7, "completed": true},
		{"description": "Ship it", "completed": "yes"},
		{"description": "Ship it", "completed": false, "due_on": 20150708},
	} {
		_, err := parser.Parse(raw)
		switch {
		case errors.Is(err, model.ErrDescriptionInvalid):
			p.Fail("bad description: " + err.Error())
		case errors.Is(err, model.ErrCompletedInvalid):
			p.Fail("bad completed flag: " + err.Error())
		case errors.Is(err, model.ErrDueDateInvalid):
			p.Fail("bad due date: " + err.Error())
		case err != nil:
			p.Fail(err.Error())
		}
	}

	p.Section("Every field at once")
	all := model.NewParser(lggr, model.WithCollectAll())
	if _, err := all.Parse(model.RawRecord{"description": "", "due_on": true}); err != nil {
		p.Fail("the data is invalid:\n" + err.Error())
	}

	p.Section("Collapse to absence")
	for _, raw := range []model.RawRecord{todoItemRecord, badRecord} {
		if parser.TryParse(raw).IsPresent() {
			p.OK("The todo item parsing was a success! 🎉")
		} else {
			p.Println("The todo item parsing wasn't a success! 👻")
		}
	}
	return nil
}

func reportExplicit(p *ui.Printer, parser *model.Parser, raw model.RawRecord) {
	item, err := parser.Parse(raw)
	if errors.Is(err, model.ErrInvalidData) {
		p.Fail("😱 the data is invalid!!! (" + err.Error() + ")")
		return
	}
	p.OK(item.String())
}
