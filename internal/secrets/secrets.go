// Copyright Skylark Drones Pvt. Ltd., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory holds one secret: the filename is the key
// name and the trimmed file contents are the value.
//
// Supported key files: sheet-sync-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SheetSyncToken is the key file holding the spreadsheet bridge bearer token.
const SheetSyncToken = "sheet-sync-token"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory yields an empty map, not an error.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}

	return secrets, nil
}
