package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/sunwei/pagegen/common/loggers"
	"github.com/sunwei/pagegen/config"
	"github.com/sunwei/pagegen/deps"
	"github.com/sunwei/pagegen/site"
	"github.com/sunwei/pagegen/sitefs"
	"github.com/sunwei/pagegen/tpl/tplimpl"
)

// flagKeys maps the build flags that override a configuration key.
var flagKeys = []struct {
	flag string
	key  string
}{
	{"source", "contentDir"},
	{"destination", "publishDir"},
	{"layouts", "layoutDir"},
	{"theme-layouts", "themeLayoutDir"},
	{"markup", "markupFormat"},
	{"layout", "layout"},
	{"tags", "tags"},
	{"tag-pages", "tagPages"},
	{"minify", "minifyOutput"},
	{"clean", "cleanDestinationDir"},
	{"build-drafts", "buildDrafts"},
	{"canonify-urls", "canonifyURLs"},
	{"base-url", "baseURL"},
	{"title", "title"},
}

type buildCmd struct {
	cmd *cobra.Command

	cfgFile  string
	envFile  string
	logLevel string
	quiet    bool
}

func newBuildCmd() *buildCmd {
	b := &buildCmd{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long: `Build reads every document below the source dir, renders it with the
page layout and writes the result to the destination dir, followed by
the index and the tag listings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return b.build(ctx)
		},
	}

	cmd.Flags().StringVarP(&b.cfgFile, "config", "c", "", "config file (TOML, YAML or JSON)")
	cmd.Flags().StringVar(&b.envFile, "env-file", ".env", "file with PAGEGEN_ environment variables, ignored if missing")
	cmd.Flags().StringVar(&b.logLevel, "log-level", "warn", "log level (debug, info, warn or error)")
	cmd.Flags().BoolVarP(&b.quiet, "quiet", "q", false, "build in quiet mode")

	cmd.Flags().StringP("source", "s", "", "directory with the documents")
	cmd.Flags().StringP("destination", "d", "", "filesystem path to write files to")
	cmd.Flags().StringP("layouts", "l", "", "directory with the layouts")
	cmd.Flags().String("theme-layouts", "", "directory with fallback layouts")
	cmd.Flags().String("markup", "", "markup of the documents (markdown or html)")
	cmd.Flags().String("layout", "", "output layout (flat or pretty-url)")
	cmd.Flags().Bool("tags", true, "render the tags listing")
	cmd.Flags().Bool("tag-pages", false, "render one listing per tag")
	cmd.Flags().Bool("minify", false, "minify the rendered HTML")
	cmd.Flags().Bool("clean", false, "remove everything in the destination dir before building")
	cmd.Flags().Bool("build-drafts", false, "include content marked as draft")
	cmd.Flags().Bool("canonify-urls", false, "make root relative URLs absolute using the base URL")
	cmd.Flags().StringP("base-url", "b", "", "hostname (and path) to the root, e.g. https://example.org/")
	cmd.Flags().String("title", "", "site title")

	b.cmd = cmd

	return b
}

func (b *buildCmd) build(ctx context.Context) error {
	logger := loggers.NewDefault(b.logLevel, b.quiet)

	cfg, err := b.loadConfig()
	if err != nil {
		return err
	}

	bcfg, err := config.DecodeBuildConfig(cfg)
	if err != nil {
		return err
	}

	osFs := afero.NewOsFs()
	fs, err := sitefs.New(osFs, osFs, bcfg)
	if err != nil {
		return err
	}

	s, err := site.NewSite(deps.DepsCfg{
		Logger:           logger,
		Fs:               fs,
		Cfg:              cfg,
		TemplateProvider: tplimpl.DefaultTemplateProvider,
	})
	if err != nil {
		return err
	}

	if err := s.Build(ctx); err != nil {
		return err
	}

	stats := s.Stats()
	logger.Printf("Built %d pages, %d files written to %q (%d skipped, %d drafts, %d warnings)\n",
		stats.Pages, stats.Files, fs.PublishDirName, stats.Skipped, stats.Drafts, logger.LogCounters().WarnCounter.Count())

	return nil
}

func (b *buildCmd) loadConfig() (config.Provider, error) {
	environ, err := b.environ()
	if err != nil {
		return nil, err
	}

	flags := config.New()
	for _, fk := range flagKeys {
		f := b.cmd.Flags().Lookup(fk.flag)
		if f == nil || !f.Changed {
			continue
		}
		if f.Value.Type() == "bool" {
			v, _ := b.cmd.Flags().GetBool(fk.flag)
			flags.Set(fk.key, v)
			continue
		}
		flags.Set(fk.key, f.Value.String())
	}

	return config.Load(config.LoadOptions{
		Fs:       afero.NewOsFs(),
		Filename: b.cfgFile,
		Environ:  environ,
		Flags:    flags,
	})
}

// environ returns the process environment with the variables from the env
// file added. Variables already set in the process win.
func (b *buildCmd) environ() ([]string, error) {
	environ := os.Environ()
	if b.envFile == "" {
		return environ, nil
	}

	vars, err := godotenv.Read(b.envFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return environ, nil
		}
		return nil, err
	}

	for k, v := range vars {
		if _, found := os.LookupEnv(k); found {
			continue
		}
		config.SetEnvVars(&environ, k, v)
	}

	return environ, nil
}
