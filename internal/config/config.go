// Package config loads tableview settings with Viper from defaults, an
// optional YAML or TOML file and TABLEVIEW_ environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"tablekit/internal/tablestate"
	"tablekit/internal/ui"
)

// EnvPrefix prefixes every environment override, e.g. TABLEVIEW_TABLE_PAGE_SIZE.
const EnvPrefix = "TABLEVIEW"

// MaxPageSize bounds page_size and page_size_options.
const MaxPageSize = 1000

// ErrInvalidPageSize is returned when a page size exceeds MaxPageSize.
var ErrInvalidPageSize = errors.New("invalid page size")

// Config is the full tableview configuration.
type Config struct {
	Data       string           `mapstructure:"data"`
	Loading    bool             `mapstructure:"loading"`
	Table      TableConfig      `mapstructure:"table"`
	Search     SearchConfig     `mapstructure:"search"`
	Messages   MessagesConfig   `mapstructure:"messages"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Log        LogConfig        `mapstructure:"log"`
}

type TableConfig struct {
	Title                  string `mapstructure:"title"`
	Subtitle               string `mapstructure:"subtitle"`
	EnableSorting          bool   `mapstructure:"enable_sorting"`
	EnableFiltering        bool   `mapstructure:"enable_filtering"`
	EnablePagination       bool   `mapstructure:"enable_pagination"`
	EnableRowSelection     bool   `mapstructure:"enable_row_selection"`
	EnableColumnVisibility bool   `mapstructure:"enable_column_visibility"`
	PageSize               int    `mapstructure:"page_size"`
	PageSizeOptions        []int  `mapstructure:"page_size_options"`
}

type SearchConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Column      string        `mapstructure:"column"`
	Placeholder string        `mapstructure:"placeholder"`
	Debounce    time.Duration `mapstructure:"debounce"`
	ShowClear   bool          `mapstructure:"show_clear"`
}

type MessagesConfig struct {
	Empty string `mapstructure:"empty"`
}

type PaginationConfig struct {
	ShowPagination bool `mapstructure:"show_pagination"`
	ShowSelection  bool `mapstructure:"show_selection"`
	ShowPageSize   bool `mapstructure:"show_page_size"`
	ShowNavigation bool `mapstructure:"show_navigation"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data", "")
	v.SetDefault("loading", false)

	v.SetDefault("table.title", ui.DefaultAppTitle)
	v.SetDefault("table.subtitle", ui.DefaultAppSubtitle)
	v.SetDefault("table.enable_sorting", true)
	v.SetDefault("table.enable_filtering", true)
	v.SetDefault("table.enable_pagination", true)
	v.SetDefault("table.enable_row_selection", true)
	v.SetDefault("table.enable_column_visibility", true)
	v.SetDefault("table.page_size", ui.DefaultAppPageSize)
	v.SetDefault("table.page_size_options", ui.DefaultAppPageSizeOptions)

	v.SetDefault("search.enabled", true)
	v.SetDefault("search.column", ui.DefaultAppSearchColumn)
	v.SetDefault("search.placeholder", ui.DefaultAppSearchHint)
	v.SetDefault("search.debounce", ui.DefaultSearchDebounce)
	v.SetDefault("search.show_clear", true)

	v.SetDefault("messages.empty", ui.DefaultAppEmptyMessage)

	v.SetDefault("pagination.show_pagination", true)
	v.SetDefault("pagination.show_selection", true)
	v.SetDefault("pagination.show_page_size", true)
	v.SetDefault("pagination.show_navigation", true)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load unmarshals v into a Config and normalizes it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if c.Table.PageSize > MaxPageSize {
		return fmt.Errorf("%w: table.page_size %d exceeds %d", ErrInvalidPageSize, c.Table.PageSize, MaxPageSize)
	}
	if c.Table.PageSize <= 0 {
		c.Table.PageSize = tablestate.DefaultPageSize
	}

	opts := make([]int, 0, len(c.Table.PageSizeOptions))
	for _, o := range c.Table.PageSizeOptions {
		if o > MaxPageSize {
			return fmt.Errorf("%w: page size option %d exceeds %d", ErrInvalidPageSize, o, MaxPageSize)
		}
		if o > 0 && !slices.Contains(opts, o) {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		opts = slices.Clone(ui.DefaultPageSizeOptions)
	}
	c.Table.PageSizeOptions = opts

	if c.Search.Debounce <= 0 {
		c.Search.Debounce = ui.DefaultSearchDebounce
	}
	c.Search.Column = strings.TrimSpace(c.Search.Column)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// AppConfig maps the settings onto the projects page configuration. Data
// loading, logging and tracing are left for the caller to fill in.
func (c *Config) AppConfig() ui.AppConfig {
	return ui.AppConfig{
		Title:       c.Table.Title,
		Subtitle:    c.Table.Subtitle,
		StayLoading: c.Loading,
		Options: tablestate.Options{
			EnableSorting:          tablestate.Bool(c.Table.EnableSorting),
			EnableFiltering:        tablestate.Bool(c.Table.EnableFiltering),
			EnablePagination:       tablestate.Bool(c.Table.EnablePagination),
			EnableRowSelection:     tablestate.Bool(c.Table.EnableRowSelection),
			EnableColumnVisibility: tablestate.Bool(c.Table.EnableColumnVisibility),
		},
		PageSize: c.Table.PageSize,
		Search: ui.SearchConfig{
			Enabled:         c.Search.Enabled,
			ColumnID:        c.Search.Column,
			Placeholder:     c.Search.Placeholder,
			Debounce:        c.Search.Debounce,
			HideClearButton: !c.Search.ShowClear,
		},
		Pagination: ui.PaginationConfig{
			HidePagination:  !c.Pagination.ShowPagination,
			HideSelection:   !c.Pagination.ShowSelection,
			HidePageSize:    !c.Pagination.ShowPageSize,
			HideNavigation:  !c.Pagination.ShowNavigation,
			PageSizeOptions: c.Table.PageSizeOptions,
		},
		Messages: ui.Messages{Empty: c.Messages.Empty},
	}
}
