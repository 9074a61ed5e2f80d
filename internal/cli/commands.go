package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/payload"
	"github.com/idilsaglam/playgrounds/internal/playground"
	"github.com/idilsaglam/playgrounds/internal/tui"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

// -------------- parse ----------------

func (a *app) parseCmd() *cobra.Command {
	var (
		try    bool
		asJSON bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse todo records from a JSON or YAML payload",
		Long: `Parse every record of a payload into a todo item.

Without --try each failure is reported with the field that broke it.
With --try failures collapse to "no value".`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.loadRecords(args, format)
			if err != nil {
				return err
			}
			return a.doParse(records, try, asJSON)
		},
	}
	cmd.Flags().BoolVar(&try, "try", false, "collapse failures to an absent value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print valid items as a JSON array")
	cmd.Flags().StringVar(&format, "format", "", "payload format for stdin: json or yaml")
	return cmd
}

func (a *app) doParse(records []model.RawRecord, try, asJSON bool) error {
	parser := do.MustInvoke[*model.Parser](a.injector)
	pr := do.MustInvoke[*ui.Printer](a.injector)

	var valid []model.TodoItem
	for i, raw := range records {
		idx := fmt.Sprintf("%2d.", i+1)
		if try {
			item, ok := parser.TryParse(raw).Get()
			if !ok {
				pr.Fail(idx + " no value")
				continue
			}
			valid = append(valid, item)
			if !asJSON {
				pr.OK(idx + " " + item.String())
			}
			continue
		}

		item, err := parser.Parse(raw)
		if err != nil {
			pr.Fail(idx + " " + strings.ReplaceAll(err.Error(), "\n", "; "))
			continue
		}
		valid = append(valid, item)
		if !asJSON {
			pr.OK(idx + " " + item.String())
		}
	}

	if asJSON {
		if valid == nil {
			valid = []model.TodoItem{}
		}
		enc := json.NewEncoder(pr.Out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(valid); err != nil {
			return fmt.Errorf("json encode: %w", err)
		}
	} else {
		t := pr.Theme()
		invalid := len(records) - len(valid)
		pr.Panel([]string{
			fmt.Sprintf("%s  %s %d  %s %d  %s %d",
				t.Title.Render("Parsed"),
				t.Success.Render(t.SymOK), len(valid),
				t.Error.Render(t.SymFail), invalid,
				t.Accent.Render("Total"), len(records)),
			t.Muted.Render(ui.ProgressBar(len(valid), len(records), 28)),
		})
	}

	if invalid := len(records) - len(valid); invalid > 0 {
		return fmt.Errorf("%d of %d records invalid", invalid, len(records))
	}
	return nil
}

// loadRecords reads the file named by args, or stdin when args is empty or "-".
func (a *app) loadRecords(args []string, format string) ([]model.RawRecord, error) {
	if format != "" && format != string(payload.JSON) && format != string(payload.YAML) {
		return nil, usagef("--format: want json or yaml, got %q", format)
	}
	if len(args) == 0 || args[0] == "-" {
		f := payload.Format(format)
		if f == "" {
			f = payload.JSON
		}
		records, err := payload.Decode(a.opt.Stdin, f)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		return records, nil
	}
	records, err := payload.Load(args[0])
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return records, nil
}

// -------------- demo ----------------

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name|all]",
		Short: "Run a playground demo; without a name, list them",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := do.MustInvoke[*playground.Registry](a.injector)
			pr := do.MustInvoke[*ui.Printer](a.injector)

			if len(args) == 0 {
				lines := []string{pr.Theme().Title.Render("Demos")}
				for _, d := range reg.Demos() {
					lines = append(lines, fmt.Sprintf("%-10s %s", d.Name, pr.Theme().Muted.Render(d.Title)))
				}
				lines = append(lines, "", pr.Theme().Muted.Render("Tip: run `playground demo all`"))
				pr.Panel(lines)
				return nil
			}
			if args[0] == "all" {
				return reg.RunAll(pr)
			}
			d, ok := reg.Get(args[0])
			if !ok {
				return usagef("unknown demo %q (have %s)", args[0], strings.Join(reg.Names(), ", "))
			}
			return d.Run(pr)
		},
	}
}

// -------------- browse ----------------

func (a *app) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse parsed items interactively; space toggles completion",
		Long: `Browse the valid items of a payload. Toggling replaces an item with a
completed copy; the payload on disk is never modified.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return usagef("browse reads the terminal; pass a file, not stdin")
			}
			records, err := a.loadRecords(args, "")
			if err != nil {
				return err
			}
			parser := do.MustInvoke[*model.Parser](a.injector)
			pr := do.MustInvoke[*ui.Printer](a.injector)

			items, perr := parser.ParseAll(records)
			invalid := len(records) - len(items)
			if perr != nil {
				for _, e := range unjoin(perr) {
					pr.Fail(e.Error())
				}
			}

			final, err := tui.Run(pr, items, invalid, a.opt.Stdin, a.opt.Stdout)
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			changes := tui.Summary(items, final)
			if len(changes) == 0 {
				pr.Muted("no changes")
				return nil
			}
			for _, c := range changes {
				pr.OK(c)
			}
			pr.Muted("nothing was saved; the payload is unchanged")
			return nil
		},
	}
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
