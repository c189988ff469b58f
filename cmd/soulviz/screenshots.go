package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/iafilius/SoulPullViz/src/logging"
)

// pngDisplay writes the chart to a PNG file instead of opening a window.
// It runs headlessly.
type pngDisplay struct {
	path string
}

func (d pngDisplay) Show(c Chart) error {
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image); err != nil {
		return fmt.Errorf("png encode %s: %w", c.Name, err)
	}
	if err := os.WriteFile(d.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	logging.Infof("wrote %s (%dx%d)", d.path, c.Image.Bounds().Dx(), c.Image.Bounds().Dy())
	return nil
}
