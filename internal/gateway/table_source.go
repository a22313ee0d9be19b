package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"monthly-sales-report/internal/domain"
	"monthly-sales-report/internal/layout"
)

// FileTableSource reads store-extract tables from a local directory tree.
// Filenames are resolved case-insensitively against the layout mapping, so
// JNL.DBF, jnl.dbf and Jnl.Dbf all satisfy the journal role.
type FileTableSource struct {
	layout layout.Layout
}

// NewFileTableSource creates a source bound to one layout mapping.
func NewFileTableSource(l layout.Layout) *FileTableSource {
	return &FileTableSource{layout: l}
}

// Read locates and parses the table playing the given role inside the
// store's directory. A missing or unreadable table is a valid degraded
// state: the result is an empty table plus a diagnostic, never an error.
func (s *FileTableSource) Read(ctx context.Context, store domain.StoreRef, role layout.Role) (domain.Table, []domain.Diagnostic) {
	spec := s.layout.Spec(role)

	path, found, err := locateTable(store.Dir, spec)
	if err != nil {
		return domain.Table{}, []domain.Diagnostic{{
			Kind:    domain.StructuralFailure,
			Store:   store.ID,
			Subject: store.Dir,
			Detail:  err.Error(),
		}}
	}
	if !found {
		return domain.Table{}, []domain.Diagnostic{{
			Kind:    domain.MissingOptionalInput,
			Store:   store.ID,
			Subject: string(role),
			Detail:  fmt.Sprintf("no %s under %s", candidateNames(spec), store.Dir),
		}}
	}

	var table domain.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dbf":
		table, err = readDBF(path)
	default:
		table, err = readCSV(path)
	}
	if err != nil {
		return domain.Table{}, []domain.Diagnostic{{
			Kind:    domain.StructuralFailure,
			Store:   store.ID,
			Subject: filepath.Base(path),
			Detail:  err.Error(),
		}}
	}
	return table, nil
}

// locateTable walks the directory listing once per candidate extension, in
// the order the layout declares them, and matches names case-insensitively.
func locateTable(dir string, spec layout.TableSpec) (string, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to read store directory: %w", err)
	}

	for _, ext := range spec.Extensions {
		want := spec.File + "." + ext
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(entry.Name(), want) {
				return filepath.Join(dir, entry.Name()), true, nil
			}
		}
	}
	return "", false, nil
}

func candidateNames(spec layout.TableSpec) string {
	names := make([]string, 0, len(spec.Extensions))
	for _, ext := range spec.Extensions {
		names = append(names, spec.File+"."+ext)
	}
	return strings.Join(names, " or ")
}
