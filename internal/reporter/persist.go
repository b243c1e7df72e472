package reporter

import (
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/specreport/internal/errors"
)

// WriteFile writes report to path, creating or truncating the file and any
// missing parent directories.
func WriteFile(path, report string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Persistence(path, "could not create output directory", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Persistence(path, "could not create output file", err)
	}
	if _, err := f.WriteString(report); err != nil {
		_ = f.Close()
		return errors.Persistence(path, "could not write report", err)
	}
	if err := f.Close(); err != nil {
		return errors.Persistence(path, "could not write report", err)
	}
	return nil
}
