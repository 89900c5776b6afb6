// Package deps holds the build environment shared by every stage of a
// site build.
package deps

import (
	"fmt"

	"github.com/bep/clocks"
	"github.com/sunwei/pagegen/common/loggers"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/helpers"
	"github.com/sunwei/pagegen/output"
	"github.com/sunwei/pagegen/publisher"
	"github.com/sunwei/pagegen/sitefs"
	"github.com/sunwei/pagegen/source"
	"github.com/sunwei/pagegen/tpl"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per Site built.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The PathSpec to use
	*helpers.PathSpec `json:"-"`

	// The templates to use.
	tmpl tpl.TemplateHandler

	// The SourceSpec to use
	SourceSpec *source.SourceSpec `json:"-"`

	// The ContentSpec to use
	*helpers.ContentSpec `json:"-"`

	// The file systems to use.
	Fs *sitefs.Fs `json:"-"`

	// Publisher writes rendered outputs below the publish dir.
	Publisher publisher.Publisher

	// All the output formats available for the current site.
	OutputFormatsConfig output.Formats

	// Clock is the build clock. Templates read "now" from it.
	Clock clocks.Clock

	templateProvider ResourceProvider

	// The configuration to use
	Cfg config.Provider `json:"-"`

	// BuildConfig is the typed view of Cfg.
	BuildConfig config.BuildConfig
}

// DepsCfg contains configuration options that can be used to configure a
// build on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The Logger to use.
	Logger loggers.Logger

	// The file systems to use
	Fs *sitefs.Fs

	// The configuration to use.
	Cfg config.Provider

	// The output formats configured.
	OutputFormats output.Formats

	// Clock defaults to the system clock.
	Clock clocks.Clock

	// Template handling.
	TemplateProvider ResourceProvider
}

// ResourceProvider is used to create and refresh resources needed.
type ResourceProvider interface {
	Update(deps *Deps) error
}

func (d *Deps) Tmpl() tpl.TemplateHandler {
	return d.tmpl
}

func (d *Deps) SetTmpl(tmpl tpl.TemplateHandler) {
	d.tmpl = tmpl
}

// New initializes a Dep struct.
// Defaults are set for nil values,
// but TemplateProvider, Fs and Cfg are always required.
func New(cfg DepsCfg) (*Deps, error) {
	if cfg.TemplateProvider == nil {
		panic("Must have a TemplateProvider")
	}
	if cfg.Fs == nil {
		panic("Must get fs ready: deps.New")
	}
	if cfg.Cfg == nil {
		panic("Must have a config: deps.New")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = loggers.NewWarningLogger()
	}

	if cfg.OutputFormats == nil {
		cfg.OutputFormats = output.DefaultFormats
	}

	if cfg.Clock == nil {
		cfg.Clock = clocks.System()
	}

	bcfg, err := config.DecodeBuildConfig(cfg.Cfg)
	if err != nil {
		return nil, err
	}

	ps, err := helpers.NewPathSpec(cfg.Cfg, bcfg)
	if err != nil {
		return nil, fmt.Errorf("create PathSpec: %w", err)
	}

	contentSpec, err := helpers.NewContentSpec(cfg.Cfg, logger, bcfg.IsPrettyURLs())
	if err != nil {
		return nil, err
	}

	sp, err := source.NewSourceSpec(cfg.Fs.Content, logger, bcfg)
	if err != nil {
		return nil, err
	}

	pub, err := publisher.NewDestinationPublisher(cfg.Fs.PublishDir, cfg.OutputFormats, cfg.Cfg)
	if err != nil {
		return nil, err
	}

	d := &Deps{
		Log:                 logger,
		Fs:                  cfg.Fs,
		templateProvider:    cfg.TemplateProvider,
		PathSpec:            ps,
		ContentSpec:         contentSpec,
		SourceSpec:          sp,
		Publisher:           pub,
		OutputFormatsConfig: cfg.OutputFormats,
		Clock:               cfg.Clock,
		Cfg:                 cfg.Cfg,
		BuildConfig:         bcfg,
	}

	return d, nil
}

// LoadResources loads the templates.
func (d *Deps) LoadResources() error {
	if err := d.templateProvider.Update(d); err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	return nil
}
