package gateway

import (
	"os"
	"path/filepath"

	"monthly-sales-report/internal/domain"
)

// DiscoverStores scans the base input directory for store extracts: every
// immediate subdirectory is one store, its name doubling as the store ID.
// A missing or unreadable base directory yields zero stores plus a
// diagnostic; the run then produces a header-only report rather than
// failing.
func DiscoverStores(baseDir string) ([]domain.StoreRef, []domain.Diagnostic) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, []domain.Diagnostic{{
			Kind:    domain.MissingOptionalInput,
			Subject: baseDir,
			Detail:  "not a readable directory",
		}}
	}

	var stores []domain.StoreRef
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		stores = append(stores, domain.StoreRef{
			ID:  entry.Name(),
			Dir: filepath.Join(baseDir, entry.Name()),
		})
	}
	return stores, nil
}
