package server

import (
	"embed"
	"io/fs"
	"os"

	"github.com/Gobd/apischema/registry"
)

//go:embed schemas/*.yaml
var embedded embed.FS

// LoadSchemas builds the registry from dir, or from the embedded descriptors
// when dir is empty.
func LoadSchemas(dir string) (*registry.Registry, error) {
	var fsys fs.FS = os.DirFS(dir)
	if dir == "" {
		sub, err := fs.Sub(embedded, "schemas")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}
	return registry.LoadFS(fsys, "*.yaml")
}
