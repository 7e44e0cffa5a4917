// sink.go
package qnull

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

/*
ReportSink persists resource reports. Create must fail when a report of
the same name already exists; reports are written exactly once and never
overwritten. Timestamp collisions between concurrent writers are accepted
as a documented limitation rather than papered over with retries.
*/
type ReportSink interface {
	Create(name string) (io.WriteCloser, error)
}

// FsSink writes reports into a directory of a filesystem. Tests pass an
// in-memory afero filesystem to assert exclusive-create semantics without
// touching the disk.
type FsSink struct {
	fs  afero.Fs
	dir string
}

func NewFsSink(fs afero.Fs, dir string) *FsSink {
	return &FsSink{fs: fs, dir: dir}
}

// Create opens a new report file, failing if the name is already taken.
func (s *FsSink) Create(name string) (io.WriteCloser, error) {
	return s.fs.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

func resourcesFileName(timestamp int64) string {
	return fmt.Sprintf("%s%d.json", ResourcesFilePrefix, timestamp)
}
