package worlds

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// The embedded worlds register themselves so the platform discovers them the
// same way it discovers maps saved by the editor. Each file is decoded once
// up front so a malformed embedded world fails at startup, not on selection.
func init() {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("worlds: reading embedded worlds: %v", err))
	}
	for _, e := range entries {
		id := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("worlds: reading embedded world %s: %v", id, err))
		}
		lvl, err := Decode(id, data)
		if err != nil {
			panic(fmt.Sprintf("worlds: embedded world %s: %v", id, err))
		}
		registry.Register(id, lvl.Name, func() (*world.Level, error) {
			return Decode(id, data)
		})
	}
}
