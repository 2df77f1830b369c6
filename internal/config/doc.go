// Package config loads tablegrid settings.
//
// Settings are layered, higher layers overriding lower ones key by key:
//
//	┌──────────────────────────────┐
//	│  4. Command line flags       │  ← Config.Set
//	├──────────────────────────────┤
//	│  3. Environment (TABLEGRID_) │
//	├──────────────────────────────┤
//	│  2. Settings file            │  ← TOML, or YAML by extension
//	├──────────────────────────────┤
//	│  1. Built-in defaults        │
//	└──────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment loading, deep merge
//   - watcher: reload notifications for the settings file
//
// # Usage
//
//	cfg := config.New(config.WithPath("tablegrid.toml"))
//	if err := cfg.Load(); err != nil {
//		return err
//	}
//	settings, err := cfg.Settings()
//	if err != nil {
//		return err
//	}
//	tbl := settings.Apply(table.New())
//
// A settings file:
//
//	[table]
//	columnSpacing = 2
//	flex = "spaceBetween"
//
//	[theme.selectRow]
//	fg = "#000"
//	bg = "#5fafd7"
//	bold = true
package config
