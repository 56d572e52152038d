package charts

import (
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/agentstation/starlens/pkg/constants"
	"github.com/agentstation/starlens/pkg/errors"
)

// fontFileName is the on-disk name of the materialized cloud font.
const fontFileName = "starlens-goregular.ttf"

// font returns a path to a TTF file the word cloud engine can load. The
// engine only reads fonts from disk, so the bundled Go Regular face is
// written to the temp directory once and reused across runs.
func (r *Renderer) font() (string, error) {
	if r.fontPath != "" {
		return r.fontPath, nil
	}

	path := filepath.Join(os.TempDir(), fontFileName)
	if info, err := os.Stat(path); err == nil && info.Size() == int64(len(goregular.TTF)) {
		r.fontPath = path
		return path, nil
	}

	if err := os.WriteFile(path, goregular.TTF, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	r.fontPath = path
	return path, nil
}
