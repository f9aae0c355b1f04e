// Package artifact persists request results as local JSON files so the
// outcome of the last run can be inspected without replaying it.
package artifact

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileSink writes named JSON artifacts into a single directory. Each write
// replaces the previous run's file.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

func (s *FileSink) Persist(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode artifact %s", name)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write artifact %s", path)
	}

	return nil
}
