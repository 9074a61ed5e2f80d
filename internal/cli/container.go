package cli

import (
	"github.com/samber/do/v2"

	"github.com/idilsaglam/playgrounds/internal/config"
	"github.com/idilsaglam/playgrounds/internal/logger"
	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/playground"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

// newInjector registers the services one CLI invocation needs. Providers
// are lazy; only what a command invokes gets built.
func newInjector(cfg *config.Config, opt Options) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)

	do.Provide(i, func(i do.Injector) (logger.Logger, error) {
		if opt.Logger != nil {
			return opt.Logger, nil
		}
		c := do.MustInvoke[*config.Config](i)
		return logger.New(logger.Config{Level: c.Log.Level, Encoding: c.Log.Encoding})
	})

	do.Provide(i, func(i do.Injector) (*ui.Printer, error) {
		c := do.MustInvoke[*config.Config](i)
		return ui.NewPrinter(opt.Stdout, opt.Stderr, c.Theme), nil
	})

	do.Provide(i, func(i do.Injector) (*model.Parser, error) {
		c := do.MustInvoke[*config.Config](i)
		lggr, err := do.Invoke[logger.Logger](i)
		if err != nil {
			return nil, err
		}
		var opts []model.Option
		if c.Parser.CollectAll {
			opts = append(opts, model.WithCollectAll())
		}
		return model.NewParser(lggr.Named("parser"), opts...), nil
	})

	do.Provide(i, func(i do.Injector) (*playground.Registry, error) {
		lggr, err := do.Invoke[logger.Logger](i)
		if err != nil {
			return nil, err
		}
		parser, err := do.Invoke[*model.Parser](i)
		if err != nil {
			return nil, err
		}
		return playground.NewRegistry(lggr.Named("demo"), parser), nil
	})

	return i
}
