// Package importer batches statement CSVs from an import directory
// through the statement parser.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IanChok/finance-tracker/internal/model"
	"github.com/IanChok/finance-tracker/internal/statement"
)

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// FileResult pairs a scanned file with its parsed transactions.
type FileResult struct {
	File         FileInfo
	Transactions []model.Transaction
}

// FileError names the file whose parse failed a batch.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// processedDir is the subdirectory files are moved to after import.
const processedDir = "processed"

// Scan returns CSV files in dir, in name order. A missing directory is an
// empty result, not an error.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// ImportAll parses every scanned file in name order, failing on the first
// file whose parse fails. One bad strict field in any file fails the whole
// batch: no partial results are returned.
func ImportAll(dir string) ([]FileResult, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	var results []FileResult
	for _, fi := range files {
		txns, err := statement.ParseFile(fi.Path)
		if err != nil {
			return nil, &FileError{Name: fi.Name, Err: err}
		}
		results = append(results, FileResult{File: fi, Transactions: txns})
	}
	return results, nil
}

// MarkProcessed moves a file from dir to dir/processed/.
func MarkProcessed(dir, fileName string) error {
	dstDir := filepath.Join(dir, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(dir, fileName)
	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
