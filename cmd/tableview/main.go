// Command tableview shows a project list in an interactive data table.
//
// Settings are read, highest priority first, from command-line flags,
// TABLEVIEW_<SECTION>_<OPTION> environment variables, the file named by
// --config or TABLEVIEW_CONFIG_FILE (YAML or TOML), and a .tableview.yaml
// in the current directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tablekit/internal/config"
	"tablekit/internal/project"
	"tablekit/internal/telemetry"
	"tablekit/internal/ui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "tableview",
		Short: "Browse projects in a sortable, searchable terminal table",
		Long: `tableview renders a project list as an interactive table with filter tabs,
debounced search, sorting, row selection and pagination.

Keys:
  tab / shift+tab   move between tabs, search, table and pagination
  /                 search by name
  s / S             sort by the focused column (S adds to the current sort)
  space / a         select a row / the whole page
  [ ] { }           previous, next, first, last page
  q                 quit`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if noSearch, _ := cmd.Flags().GetBool("no-search"); noSearch {
				v.Set("search.enabled", false)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .tableview.yaml, can also use TABLEVIEW_CONFIG_FILE env var)")
	flags.String("data", "", "YAML, JSON or TOML project list (default: built-in sample)")
	flags.Int("page-size", ui.DefaultAppPageSize, "rows per page")
	flags.Bool("loading", false, "keep showing the loading skeleton")
	flags.Bool("no-search", false, "hide the search bar")
	flags.String("log-file", "", "write logs to this file (logs are discarded otherwise)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("data", flags.Lookup("data"))
	_ = v.BindPFlag("table.page_size", flags.Lookup("page-size"))
	_ = v.BindPFlag("loading", flags.Lookup("loading"))
	_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	return cmd
}

// initConfig picks the config file and enables TABLEVIEW_ environment overrides.
// A missing default file is not an error; a missing explicit file is.
func initConfig(v *viper.Viper, cfgFile string) error {
	explicit := true
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case os.Getenv(config.EnvPrefix+"_CONFIG_FILE") != "":
		v.SetConfigFile(os.Getenv(config.EnvPrefix + "_CONFIG_FILE"))
	default:
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".tableview")
	}

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger writes to path, or discards everything when path is empty.
// The returned close function is never nil.
func newLogger(path string, level log.Level) (*log.Logger, func() error, error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "tableview",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, closeLog, err := newLogger(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer closeLog()

	tp, err := telemetry.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace flush failed", "err", err)
		}
	}()

	appCfg := cfg.AppConfig()
	appCfg.Logger = logger
	appCfg.Tracer = tp.Tracer()
	if cfg.Data != "" {
		path := cfg.Data
		appCfg.Load = func() ([]project.Project, error) { return project.Load(path) }
	} else {
		appCfg.Projects = project.Sample()
	}

	app, err := ui.NewAppModel(appCfg)
	if err != nil {
		return err
	}
	logger.Info("starting", "data", cfg.Data, "pageSize", cfg.Table.PageSize, "tracing", tp.Enabled())

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
