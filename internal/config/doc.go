// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for netdiff's user
// configuration. The configuration is a YAML document named netdiff.yaml in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/netdiff.yaml or $HOME/.config/netdiff.yaml
//   - macOS: $HOME/Library/Application Support/netdiff.yaml
//   - Windows: %APPDATA%/netdiff.yaml
//
// NETDIFF_CFG_FILE overrides the location with a full file path.
package config
