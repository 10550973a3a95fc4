package ocr

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// mimeByExt maps accepted raster image extensions to their MIME type.
// PDF and other document formats are deliberately absent.
var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
}

// SupportedImage reports whether path has an extension the extractor accepts.
func SupportedImage(path string) bool {
	_, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// encodeImage reads the file at path fully into memory and returns it as a
// base64 data URI suitable for embedding in a chat message.
func encodeImage(path string) (string, error) {
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
