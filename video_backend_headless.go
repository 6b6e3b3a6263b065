//go:build headless

package main

func init() {
	compiledFeatures = append(compiledFeatures, "video:headless")
}

// NewEbitenSurface falls back to an in-memory surface in headless builds.
func NewEbitenSurface(cfg SurfaceConfig) (Surface, error) {
	return NewMemorySurface(cfg.Width, cfg.Height), nil
}
