package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// WritePdfStub writes a file that content sniffers identify as a PDF. The
// body between header and trailer is comment filler, so for any size larger
// than the fixed framing the file is exactly size bytes.
func WritePdfStub(t testing.TB, path string, size int64) {
	t.Helper()

	header := []byte("%PDF-1.4\n")
	trailer := []byte("%%EOF\n")

	padding := size - int64(len(header)) - int64(len(trailer))
	if padding < 0 {
		padding = 0
	}
	var buf bytes.Buffer
	buf.Write(header)
	buf.Write(bytes.Repeat([]byte{'%'}, int(padding)))
	buf.Write(trailer)

	writeStub(t, path, buf.Bytes())
}

// WriteJpegStub writes the JFIF marker bytes a JPEG starts with.
func WriteJpegStub(t testing.TB, path string) {
	t.Helper()
	writeStub(t, path, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00})
}

// WriteExecutableStub writes an MZ-prefixed blob that no converter accepts.
func WriteExecutableStub(t testing.TB, path string) {
	t.Helper()
	writeStub(t, path, []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00, 0x00, 0x00})
}

func writeStub(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
