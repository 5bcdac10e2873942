// Package config handles loading and validation of supgit configuration.
//
// Configuration is read from ~/.config/supgit/config.toml. A missing file
// yields the defaults; keys absent from the file keep their default value.
//
// # Configuration Sources (highest priority first)
//
//   - SUPGIT_SKIP_UPDATE_CHECK env var: any value disables the update check
//   - SUPGIT_SHELL_CONFIG env var: startup file edited by alias/unalias
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - log.short_count / log.long_count: commits shown by "supgit log" (20 / 40)
//   - update.check / update.interval: automatic release check (true / "24h")
//   - alias.shell_config: absolute or ~/... path overriding ~/.zshrc or ~/.bashrc
//   - ui.theme: "default", "dracula", "nord" or "none"
package config
