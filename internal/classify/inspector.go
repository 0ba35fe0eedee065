package classify

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Inspector resolves a file to a MIME-like media type string.
type Inspector interface {
	Detect(path string) (string, error)
}

// SniffInspector detects media types from a known-extension table, falling
// back to content sniffing over the leading bytes. The extension table wins
// for office formats because their containers sniff as generic zip/ole
// archives.
type SniffInspector struct{}

var extensionTypes = map[string]string{
	".pdf": "application/pdf",

	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",

	".odt": "application/vnd.oasis.opendocument.text",
	".ods": "application/vnd.oasis.opendocument.spreadsheet",
	".odp": "application/vnd.oasis.opendocument.presentation",
	".odg": "application/vnd.oasis.opendocument.graphics",

	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",

	".doc": "application/msword",
	".xls": "application/vnd.ms-excel",
	".ppt": "application/vnd.ms-powerpoint",
	".rtf": "application/msword",

	".txt": "text/plain",
	".md":  "text/plain",
	".log": "text/plain",
	".sh":  "application/x-shellscript",
}

// Detect returns the media type for path. A missing or unreadable file is an
// error; an unrecognized but readable file yields application/octet-stream.
func (SniffInspector) Detect(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(path)); ext != "" {
		if mediaType, ok := extensionTypes[ext]; ok {
			return mediaType, nil
		}
	}

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	sniffed := http.DetectContentType(buf[:n])
	if mediaType, _, found := strings.Cut(sniffed, ";"); found {
		return strings.TrimSpace(mediaType), nil
	}
	return sniffed, nil
}
