package storage

import (
	"fmt"
	"os"
	"strings"
)

// EnsureDir creates a directory (and parents) if it does not exist yet.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("EnsureDir(): failed to create %s: %w", path, err)
	}
	return nil
}

// ExtensionForContentType maps an upload Content-Type to the stored file
// extension. Total over all strings; unknown types fall back to .bin.
func ExtensionForContentType(contentType string) string {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "webm"):
		return ".webm"
	case strings.Contains(ct, "wav"):
		return ".wav"
	case strings.Contains(ct, "mpeg"), strings.Contains(ct, "mp3"):
		return ".mp3"
	case strings.Contains(ct, "ogg"):
		return ".ogg"
	}
	return ".bin"
}

// CodecForExtension infers the audio codec recorded in the sidecar.
func CodecForExtension(ext string) string {
	switch ext {
	case ".wav":
		return "pcm_s16le"
	case ".webm":
		return "opus"
	}
	return "unknown"
}
