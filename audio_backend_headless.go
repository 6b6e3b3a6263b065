//go:build headless

package main

func init() {
	compiledFeatures = append(compiledFeatures, "audio:silent")
}

func NewOtoBeeper() (Beeper, error) {
	return silentBeeper{}, nil
}
