package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/internal/tablestate"
	"tablekit/internal/ui"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, ui.DefaultAppPageSize, cfg.Table.PageSize)
	assert.Equal(t, []int{5, 10, 20, 50}, cfg.Table.PageSizeOptions)
	assert.True(t, cfg.Table.EnableSorting)
	assert.True(t, cfg.Search.Enabled)
	assert.Equal(t, "name", cfg.Search.Column)
	assert.Equal(t, ui.DefaultSearchDebounce, cfg.Search.Debounce)
	assert.Equal(t, ui.DefaultAppEmptyMessage, cfg.Messages.Empty)
	assert.True(t, cfg.Pagination.ShowPagination)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoad_Normalizes(t *testing.T) {
	tests := []struct {
		name        string
		set         map[string]any
		wantSize    int
		wantOptions []int
	}{
		{
			name:        "zero page size falls back",
			set:         map[string]any{"table.page_size": 0},
			wantSize:    tablestate.DefaultPageSize,
			wantOptions: []int{5, 10, 20, 50},
		},
		{
			name:        "negative page size falls back",
			set:         map[string]any{"table.page_size": -3},
			wantSize:    tablestate.DefaultPageSize,
			wantOptions: []int{5, 10, 20, 50},
		},
		{
			name:        "empty options fall back to defaults",
			set:         map[string]any{"table.page_size_options": []int{}},
			wantSize:    ui.DefaultAppPageSize,
			wantOptions: ui.DefaultPageSizeOptions,
		},
		{
			name:        "options are deduplicated in the given order",
			set:         map[string]any{"table.page_size_options": []int{25, 0, 5, 25, -1}},
			wantSize:    ui.DefaultAppPageSize,
			wantOptions: []int{25, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, cfg.Table.PageSize)
			assert.Equal(t, tt.wantOptions, cfg.Table.PageSizeOptions)
		})
	}
}

func TestLoad_InvalidPageSize(t *testing.T) {
	v := newViper()
	v.Set("table.page_size", MaxPageSize+1)
	_, err := Load(v)
	assert.ErrorIs(t, err, ErrInvalidPageSize)

	v = newViper()
	v.Set("table.page_size_options", []int{10, MaxPageSize * 2})
	_, err = Load(v)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	v := newViper()
	v.Set("log.level", "loud")
	_, err := Load(v)
	assert.ErrorContains(t, err, "log.level")
}

func TestLoad_FromFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "tableview.yaml",
			content: `
table:
  page_size: 5
  enable_row_selection: false
search:
  column: assignee
  debounce: 50ms
pagination:
  show_page_size: false
messages:
  empty: nothing here
`,
		},
		{
			name: "toml",
			file: "tableview.toml",
			content: `
[table]
page_size = 5
enable_row_selection = false

[search]
column = "assignee"
debounce = "50ms"

[pagination]
show_page_size = false

[messages]
empty = "nothing here"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			v := newViper()
			v.SetConfigFile(path)
			require.NoError(t, v.ReadInConfig())

			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, 5, cfg.Table.PageSize)
			assert.False(t, cfg.Table.EnableRowSelection)
			assert.True(t, cfg.Table.EnableSorting, "unset keys keep their defaults")
			assert.Equal(t, "assignee", cfg.Search.Column)
			assert.Equal(t, 50*time.Millisecond, cfg.Search.Debounce)
			assert.False(t, cfg.Pagination.ShowPageSize)
			assert.Equal(t, "nothing here", cfg.Messages.Empty)
		})
	}
}

func TestAppConfig(t *testing.T) {
	v := newViper()
	v.Set("table.enable_row_selection", false)
	v.Set("pagination.show_navigation", false)
	v.Set("search.show_clear", false)
	v.Set("loading", true)
	cfg, err := Load(v)
	require.NoError(t, err)

	app := cfg.AppConfig()
	assert.True(t, app.StayLoading)
	assert.False(t, app.Options.RowSelection())
	assert.True(t, app.Options.Sorting())
	assert.True(t, app.Options.ColumnVisibility())
	assert.Equal(t, ui.DefaultAppPageSize, app.PageSize)
	assert.True(t, app.Search.Enabled)
	assert.Equal(t, "name", app.Search.ColumnID)
	assert.True(t, app.Search.HideClearButton)
	assert.True(t, app.Pagination.HideNavigation)
	assert.False(t, app.Pagination.HidePagination)
	assert.Equal(t, []int{5, 10, 20, 50}, app.Pagination.PageSizeOptions)
	assert.Equal(t, ui.DefaultAppEmptyMessage, app.Messages.Empty)
}
