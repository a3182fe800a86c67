package swiperow

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The controller and its support packages must build without cgo SDL.
func TestCoreDoesNotImportSDL(t *testing.T) {
	for _, dir := range []string{".", "internal", "constants", "icon", "i18n", "evdevsource"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files)

		for _, name := range files {
			f, err := parser.ParseFile(token.NewFileSet(), name, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				assert.False(t, strings.Contains(path, "go-sdl2"), "%s imports %s", name, path)
			}
		}
	}
}
