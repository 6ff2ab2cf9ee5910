// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The config command.
//
// Command: config [subcommand]
// Short:   Manage configuration and the assistant/skill registry
//
// Subcommands:
//   show (default)      Show configuration and the loaded registry
//   path                Show file locations
//   init                Write default config and a sample registry
//   validate [file]     Parse a registry strictly and report problems
//   get <key>           Get a config value
//   set <key> <value>   Set a config value and save
//
// Examples:
//   alicelink config init --format yaml
//   alicelink config validate ~/.alicelink/registry.toml
//   alicelink config set launcher.dry_run true
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/heyalice/alicelink/internal/config"
	"github.com/heyalice/alicelink/internal/registry"
	"github.com/heyalice/alicelink/internal/util"
)

var configSubcommands = []string{"show", "path", "init", "validate", "get", "set"}

// HandleConfig dispatches config subcommands.
func HandleConfig(app *App) error {
	switch strings.ToLower(app.Args.Subcommand) {
	case "", "show":
		return handleConfigShow(app)
	case "path":
		return handleConfigPath(app)
	case "init":
		return handleConfigInit(app)
	case "validate":
		return handleConfigValidate(app)
	case "get":
		return handleConfigGet(app)
	case "set":
		return handleConfigSet(app)
	default:
		return ErrUnknownSubcommand("config", app.Args.Subcommand, configSubcommands)
	}
}

// configFilePath returns the file config commands read and write: --config,
// else an existing config.toml or config.json, else config.toml.
func configFilePath(app *App) (string, error) {
	if app.Args.ConfigPath != "" {
		return app.Args.ConfigPath, nil
	}
	tomlPath, err := config.ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := config.ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

func saveConfig(cfg *config.Config, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}

// =============================================================================
// SHOW / PATH
// =============================================================================

func handleConfigShow(app *App) error {
	path, _ := configFilePath(app)
	regCfg := app.Store.Current().Config()

	if app.Args.JSON {
		return NewJSONResponse("config", ConfigData{
			ConfigPath:   path,
			RegistryPath: app.Config.RegistryPath(),
			HistoryPath:  app.Config.HistoryPath(),
			Origin:       string(app.Origin),
			Config:       app.Config,
			Registry:     regCfg,
		}).Write(app.Out)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(app.Config); err != nil {
		return NewCommandError("config", "show", "cannot encode config", err)
	}

	format := registry.FormatJSON
	if app.Origin == registry.OriginFile {
		format = registry.FormatFromPath(app.Config.RegistryPath())
	}
	regText, err := registry.Marshal(regCfg, format)
	if err != nil {
		return NewCommandError("config", "show", "cannot encode registry", err)
	}

	mode := app.Host.Theme()
	colour := ColorsEnabled()
	render := func(text, lang string) string {
		if colour {
			return highlight(text, lang, mode)
		}
		return text
	}

	fmt.Fprintln(app.Out, SectionStyle.Render("Config")+" "+DimStyle.Render(path))
	fmt.Fprintln(app.Out, render(buf.String(), "toml"))
	fmt.Fprintln(app.Out, RenderSeparator(listingWidth(app.Config.UI.Width)))
	fmt.Fprintln(app.Out, SectionStyle.Render("Registry")+" "+DimStyle.Render(registrySource(app)))
	fmt.Fprintln(app.Out, render(string(regText), format.String()))
	return nil
}

func registrySource(app *App) string {
	switch app.Origin {
	case registry.OriginFile:
		return app.Config.RegistryPath()
	case registry.OriginInline:
		return "(registry.inline)"
	default:
		return "(none configured, run alicelink config init)"
	}
}

func handleConfigPath(app *App) error {
	path, err := configFilePath(app)
	if err != nil {
		return NewCommandError("config", "path", "cannot locate config directory", err)
	}

	if app.Args.JSON {
		return NewJSONResponse("config", ConfigData{
			ConfigPath:   path,
			RegistryPath: app.Config.RegistryPath(),
			HistoryPath:  app.Config.HistoryPath(),
		}).Write(app.Out)
	}

	fmt.Fprintf(app.Out, "%s %s\n", RenderLabel("Config"), path)
	fmt.Fprintf(app.Out, "%s %s\n", RenderLabel("Registry"), app.Config.RegistryPath())
	fmt.Fprintf(app.Out, "%s %s\n", RenderLabel("History"), app.Config.HistoryPath())
	return nil
}

// =============================================================================
// INIT
// =============================================================================

func handleConfigInit(app *App) error {
	p := NewArgParser(app.Args.Raw)
	force := p.BoolFlag("force")

	cfg := app.Config.Clone()
	regPath := cfg.RegistryPath()
	if regPath == "" {
		cfg.Registry.File = config.Default().Registry.File
		regPath = cfg.RegistryPath()
	}

	format := registry.FormatFromPath(regPath)
	if name := p.Flag("format"); name != "" {
		f, ok := parseFormatName(name)
		if !ok {
			return &ValidationError{Field: "format", Value: name, Reason: "must be json, toml or yaml", Example: "alicelink config init --format toml"}
		}
		format = f
		if registry.FormatFromPath(regPath) != f || !hasRegistryExt(regPath) {
			cfg.Registry.File = strings.TrimSuffix(cfg.Registry.File, filepath.Ext(cfg.Registry.File)) + "." + f.String()
			regPath = cfg.RegistryPath()
		}
	}

	cfgPath, err := configFilePath(app)
	if err != nil {
		return NewCommandError("config", "init", "cannot locate config directory", err)
	}

	var written []string

	if force || !exists(cfgPath) {
		if err := saveConfig(cfg, cfgPath); err != nil {
			return NewCommandError("config", "init", "cannot write config", err)
		}
		written = append(written, cfgPath)
	}

	if force || !exists(regPath) {
		data, err := registry.Marshal(registry.DefaultConfig(), format)
		if err != nil {
			return NewCommandError("config", "init", "cannot encode sample registry", err)
		}
		if err := util.AtomicWriteFile(regPath, data, 0600); err != nil {
			return NewCommandError("config", "init", "cannot write registry", err)
		}
		written = append(written, regPath)
	}

	if app.Args.JSON {
		return NewJSONResponse("config", ConfigData{
			ConfigPath:   cfgPath,
			RegistryPath: regPath,
			Written:      written,
		}).Write(app.Out)
	}

	if len(written) == 0 {
		fmt.Fprintf(app.Out, "%s config and registry already exist (use --force to overwrite)\n", WarningStyle.Render("[!]"))
		return nil
	}
	for _, path := range written {
		fmt.Fprintf(app.Out, "%s wrote %s\n", RenderStatus(true), path)
	}
	return nil
}

func parseFormatName(name string) (registry.Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return registry.FormatJSON, true
	case "toml":
		return registry.FormatTOML, true
	case "yaml", "yml":
		return registry.FormatYAML, true
	default:
		return registry.FormatJSON, false
	}
}

func hasRegistryExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// =============================================================================
// VALIDATE
// =============================================================================

// handleConfigValidate parses the registry strictly; unlike loading, a parse
// error is reported rather than degrading to an empty registry. Lint issues
// are warnings and do not fail the command.
func handleConfigValidate(app *App) error {
	path := app.Args.ConfigKey
	var text string
	var format registry.Format

	switch {
	case path != "":
		path = config.ExpandPath(path)
	case strings.TrimSpace(app.Config.Registry.Inline) != "":
		path = "(registry.inline)"
		text = app.Config.Registry.Inline
		format = registry.FormatJSON
	default:
		path = app.Config.RegistryPath()
	}

	if text == "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Resource: "registry file", ID: path}
		}
		if err != nil {
			return NewCommandError("config", "validate", "cannot read registry", err)
		}
		text = string(data)
		format = registry.FormatFromPath(path)
	}

	reg, err := registry.ParseFormat(text, format)
	if err != nil {
		return NewCommandError("config", "validate", path, err)
	}
	issues := reg.Lint()

	if app.Args.JSON {
		if issues == nil {
			issues = []registry.Issue{}
		}
		return NewJSONResponse("config", ValidateData{
			Path:       path,
			Format:     format.String(),
			Assistants: len(reg.Assistants()),
			Skills:     len(reg.Skills()),
			Issues:     issues,
		}).Write(app.Out)
	}

	fmt.Fprintf(app.Out, "%s %s: %d assistants, %d skills\n",
		RenderStatus(true), path, len(reg.Assistants()), len(reg.Skills()))
	for _, issue := range issues {
		style := DimStyle
		if issue.Severity == registry.SeverityWarning {
			style = WarningStyle
		}
		fmt.Fprintln(app.Out, style.Render(indentWrapped(issue.String(), "  ", listingWidth(app.Config.UI.Width))))
	}
	return nil
}

// =============================================================================
// GET / SET
// =============================================================================

func handleConfigGet(app *App) error {
	key := app.Args.ConfigKey
	if key == "" {
		return ErrMissingArgument("key", "alicelink config get ui.theme")
	}

	value, err := app.Config.Get(key)
	if err != nil {
		return &ValidationError{Field: "key", Value: key, Reason: err.Error(), Example: "one of: " + strings.Join(config.GetAllKeys(), ", ")}
	}

	if app.Args.JSON {
		return NewJSONResponse("config", ConfigData{Key: key, Value: value}).Write(app.Out)
	}
	fmt.Fprintln(app.Out, value)
	return nil
}

func handleConfigSet(app *App) error {
	key := app.Args.ConfigKey
	if key == "" || app.Args.ConfigVal == "" {
		return ErrMissingArgument("key and value", "alicelink config set ui.theme dark")
	}

	cfg := app.Config.Clone()
	if err := cfg.Set(key, app.Args.ConfigVal); err != nil {
		return &ValidationError{Field: "key", Value: key, Reason: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := configFilePath(app)
	if err != nil {
		return NewCommandError("config", "set", "cannot locate config directory", err)
	}
	if err := saveConfig(cfg, path); err != nil {
		return NewCommandError("config", "set", "cannot save config", err)
	}
	app.Config = cfg

	value, _ := cfg.Get(key)
	if app.Args.JSON {
		return NewJSONResponse("config", ConfigData{ConfigPath: path, Key: key, Value: value}).Write(app.Out)
	}
	if !app.Args.Quiet {
		fmt.Fprintf(app.Out, "%s %s = %v\n", RenderStatus(true), key, value)
	}
	return nil
}
