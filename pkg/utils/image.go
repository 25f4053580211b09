package utils

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
)

// SaveImage encodes img as a PNG file. The .png extension is added to
// filename when missing.
func SaveImage(filename string, img image.Image) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}

	return file.Close()
}
