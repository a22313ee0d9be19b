// Package layout declares which files inside a store extract play which
// role in the pipeline. The reader consumes only this mapping; no table
// name is hard-coded anywhere else.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Role names one logical table of a store extract.
type Role string

const (
	RoleJournal  Role = "journal"
	RoleHeader   Role = "header"
	RoleStore    Role = "store"
	RoleCategory Role = "category"
)

// Roles lists every known role.
var Roles = []Role{RoleJournal, RoleHeader, RoleStore, RoleCategory}

// TableSpec maps a role onto candidate files. File is the base name without
// extension; Extensions are tried in order, each matched case-insensitively
// against the directory listing.
type TableSpec struct {
	File       string   `yaml:"file"`
	Extensions []string `yaml:"extensions"`
}

// Layout is the full role-to-file mapping for one deployment.
type Layout struct {
	Tables map[Role]TableSpec `yaml:"tables"`
}

// Default returns the legacy store-database layout: jnl/jnh/str/cat tables
// shipped as dBase files, with CSV accepted as a re-export fallback.
func Default() Layout {
	exts := []string{"dbf", "csv"}
	return Layout{
		Tables: map[Role]TableSpec{
			RoleJournal:  {File: "jnl", Extensions: exts},
			RoleHeader:   {File: "jnh", Extensions: exts},
			RoleStore:    {File: "str", Extensions: exts},
			RoleCategory: {File: "cat", Extensions: exts},
		},
	}
}

// Load reads a layout override from a YAML file. Roles absent from the file
// keep their default mapping.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	var override Layout
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}

	l := Default()
	for role, spec := range override.Tables {
		if spec.File != "" {
			merged := l.Tables[role]
			merged.File = spec.File
			if len(spec.Extensions) > 0 {
				merged.Extensions = spec.Extensions
			}
			l.Tables[role] = merged
		}
	}

	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("invalid layout: %w", err)
	}
	return l, nil
}

// Validate checks that every known role is mapped to a usable spec.
func (l Layout) Validate() error {
	for _, role := range Roles {
		spec, ok := l.Tables[role]
		if !ok || spec.File == "" {
			return fmt.Errorf("role %q has no file mapping", role)
		}
		if len(spec.Extensions) == 0 {
			return fmt.Errorf("role %q has no extensions", role)
		}
		for _, ext := range spec.Extensions {
			if ext != "dbf" && ext != "csv" {
				return fmt.Errorf("role %q: unsupported extension %q", role, ext)
			}
		}
	}
	return nil
}

// Spec returns the mapping for role, falling back to the default layout for
// unknown roles so lookups never panic.
func (l Layout) Spec(role Role) TableSpec {
	if spec, ok := l.Tables[role]; ok {
		return spec
	}
	return Default().Tables[role]
}
