package colorcatalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// defaultBundle resolves the executable's directory once per process.
var defaultBundle = sync.OnceValues(func() (fs.FS, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return os.DirFS(filepath.Dir(exe)), nil
})

// DefaultBundle returns the directory containing the running executable.
// A Manager without a bundle looks for its catalog there.
func DefaultBundle() (fs.FS, error) {
	return defaultBundle()
}
