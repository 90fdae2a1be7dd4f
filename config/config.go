/*
File    : cortado/config/config.go
Package : config

Loads the feature-flag configuration the evaluator consumes: which of
the gated built-in commands (print/return/input/inputf/split/join) are
enabled for a run. Grounded on dekarrin-tunaq's use of
github.com/BurntSushi/toml for file-based configuration, applied here
to cortado's smaller "features" surface.
*/
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bencinn/cortado/builtins"
)

// Features is the decoded shape of a cortado.toml file's [features]
// table. Fields default to their Go zero value (false) when absent
// from a file that does exist; Load itself applies the "everything on
// by default" rule when there is no file at all.
type Features struct {
	Print  bool `toml:"print"`
	Return bool `toml:"return"`
	Input  bool `toml:"input"`
	Inputf bool `toml:"inputf"`
	Split  bool `toml:"split"`
	Join   bool `toml:"join"`
}

// File is the top-level shape of a cortado.toml config file.
type File struct {
	Features Features `toml:"features"`
}

// AllEnabled returns the full built-in name set, used as the default
// when no config file is present.
func AllEnabled() []string {
	return append([]string(nil), builtins.Names...)
}

// Load reads and decodes the TOML config file at path, returning the
// enabled feature names. If path is empty, it returns AllEnabled()
// rather than treating "no config" as "no features".
func Load(path string) ([]string, error) {
	if path == "" {
		return AllEnabled(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return AllEnabled(), nil
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	return f.Features.enabledNames(), nil
}

func (f Features) enabledNames() []string {
	var names []string
	if f.Print {
		names = append(names, "print")
	}
	if f.Return {
		names = append(names, "return")
	}
	if f.Input {
		names = append(names, "input")
	}
	if f.Inputf {
		names = append(names, "inputf")
	}
	if f.Split {
		names = append(names, "split")
	}
	if f.Join {
		names = append(names, "join")
	}
	return names
}

// ApplyOverrides adds enable and removes disable from a feature name
// set, matching cmd/cortado's --enable/--disable flags (repeatable,
// applied after the config file).
func ApplyOverrides(enabled []string, enable, disable []string) []string {
	set := make(map[string]bool, len(enabled))
	for _, n := range enabled {
		set[n] = true
	}
	for _, n := range enable {
		set[n] = true
	}
	for _, n := range disable {
		delete(set, n)
	}
	out := make([]string, 0, len(set))
	for _, n := range builtins.Names {
		if set[n] {
			out = append(out, n)
		}
	}
	return out
}
