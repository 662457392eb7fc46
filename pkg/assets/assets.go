// Package assets defines the sample lighting texture set and writes it to
// disk. The output directory is always an explicit parameter; the package
// holds no process-wide state.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/xob0t/GoLumen/pkg/pngenc"
	"github.com/xob0t/GoLumen/pkg/sampler"
)

// Asset names one generated texture: output filename, resolution, and the
// sampler that produces its pixels.
type Asset struct {
	Name    string
	Width   int
	Height  int
	Sampler sampler.Func
}

// Defaults returns the standard sample set: a brick base-color map, its
// normal map, and a gobo mask.
func Defaults() []Asset {
	return []Asset{
		{Name: "sample_base_texture.png", Width: 1024, Height: 1024, Sampler: sampler.BaseTexture},
		{Name: "sample_normal_map.png", Width: 1024, Height: 1024, Sampler: sampler.Normal},
		{Name: "sample_gobo.png", Width: 512, Height: 512, Sampler: sampler.Gobo},
	}
}

// Lookup finds a default asset by filename or by its bare stem
// (e.g. "sample_gobo").
func Lookup(name string) (Asset, bool) {
	for _, a := range Defaults() {
		if a.Name == name || a.Name == name+".png" {
			return a, true
		}
	}
	return Asset{}, false
}

// Generate writes every asset in list under dir, creating the directory if
// absent. The first failure aborts and is returned to the caller.
func Generate(dir string, list []Asset, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	for _, a := range list {
		path := filepath.Join(dir, a.Name)
		logger.Info("generating texture", "name", a.Name, "width", a.Width, "height", a.Height)
		if err := pngenc.WriteFile(path, a.Width, a.Height, a.Sampler); err != nil {
			return err
		}
	}

	logger.Info("generated sample assets", "dir", dir, "count", len(list))
	return nil
}
