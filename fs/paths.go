// Package fs provides file-based input and output for the pipeline: the CSV
// path list on the way in, the JSON document collection on the way out.
package fs

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/DavidFarrell/govscrape"
)

// LoadPaths reads content paths from a CSV file with a "Path" column.
// Empty cells are dropped; duplicates are kept (the pipeline deduplicates).
func LoadPaths(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, govscrape.Errorf(govscrape.ENOTFOUND, "file not found at %s", filename)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, govscrape.Errorf(govscrape.EINVALID, "reading CSV header from %s: %v", filename, err)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "path") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, govscrape.Errorf(govscrape.EINVALID, "no Path column in %s", filename)
	}

	var paths []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, govscrape.Errorf(govscrape.EINVALID, "reading CSV record from %s: %v", filename, err)
		}
		if col >= len(record) {
			continue
		}
		path := strings.TrimSpace(record[col])
		if path == "" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		paths = append(paths, path)
	}

	return paths, nil
}
