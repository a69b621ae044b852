package utils

import (
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extensions for the image types browsers actually declare. The stdlib
// mime.ExtensionsByType mapping is platform-dependent (image/jpeg can come
// back as ".jpe"), so common types are pinned here.
var extByMIME = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/avif":    ".avif",
	"image/bmp":     ".bmp",
	"image/svg+xml": ".svg",
	"image/tiff":    ".tiff",
}

// ExtensionForMIME maps a declared content type to a file extension,
// falling back to ".bin" for anything unrecognized.
func ExtensionForMIME(contentType string) string {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	if ext, ok := extByMIME[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

// GenerateFilename builds a collision-resistant filename for an uploaded
// file: current unix millis, a random suffix and an extension derived from
// the declared content type.
func GenerateFilename(contentType string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ExtensionForMIME(contentType))
}
