package build

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"empty", nil, encUnknown},
		{"plain", []byte("<html>"), encUnknown},
		{"utf8", []byte{0xEF, 0xBB, 0xBF, 'a'}, encUTF8},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'a'}, encUTF16BigEndian},
		{"utf16le", []byte{0xFF, 0xFE, 'a', 0}, encUTF16LittleEndian},
		{"utf32be", []byte{0, 0, 0xFE, 0xFF}, encUTF32BigEndian},
		{"utf32le", []byte{0xFF, 0xFE, 0, 0}, encUTF32LittleEndian},
		{"short", []byte{0xEF, 0xBB}, encUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadSource(t *testing.T) {
	const text = `<div class="D(b) C(#fff)">`

	t.Run("utf8", func(t *testing.T) {
		data, enc, err := readSource(strings.NewReader(text), int64(len(text)), DefaultMaxSourceSize)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != text || enc != encUnknown {
			t.Errorf("readSource() = %q, %v", data, enc)
		}
	})

	t.Run("utf8 bom", func(t *testing.T) {
		src := "\xEF\xBB\xBF" + text
		data, enc, err := readSource(strings.NewReader(src), int64(len(src)), DefaultMaxSourceSize)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != text || enc != encUTF8 {
			t.Errorf("readSource() = %q, %v", data, enc)
		}
	})

	t.Run("utf16le", func(t *testing.T) {
		src, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
		if err != nil {
			t.Fatal(err)
		}
		data, enc, err := readSource(bytes.NewReader(src), int64(len(src)), DefaultMaxSourceSize)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != text || enc != encUTF16LittleEndian {
			t.Errorf("readSource() = %q, %v", data, enc)
		}
	})

	t.Run("declared charset", func(t *testing.T) {
		page := `<html><head><meta charset="windows-1251"></head><body class="D(b)">Привет</body></html>`
		src, err := charmap.Windows1251.NewEncoder().Bytes([]byte(page))
		if err != nil {
			t.Fatal(err)
		}
		data, enc, err := readSource(bytes.NewReader(src), int64(len(src)), DefaultMaxSourceSize)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != page || enc != encDeclared {
			t.Errorf("readSource() = %q, %v", data, enc)
		}
	})

	t.Run("binary", func(t *testing.T) {
		src := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
		data, _, err := readSource(bytes.NewReader(src), int64(len(src)), DefaultMaxSourceSize)
		if err != nil {
			t.Fatal(err)
		}
		if data != nil {
			t.Errorf("binary content returned %q", data)
		}
	})

	t.Run("bmp magic in text", func(t *testing.T) {
		src := "BM(1px) D(b)"
		data, _, err := readSource(strings.NewReader(src), int64(len(src)), DefaultMaxSourceSize)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != src {
			t.Errorf("readSource() = %q, want %q", data, src)
		}
	})

	t.Run("nul", func(t *testing.T) {
		src := []byte("D(b)\x00D(n)")
		data, _, err := readSource(bytes.NewReader(src), int64(len(src)), DefaultMaxSourceSize)
		if err != nil || data != nil {
			t.Errorf("readSource() = %q, %v, want nil", data, err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		_, _, err := readSource(strings.NewReader(text), int64(len(text)), 4)
		if err == nil || !strings.Contains(err.Error(), "too large") {
			t.Errorf("readSource() error = %v", err)
		}
	})
}

func TestIsBinary(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0xFF, 0xFE}
	tests := []struct {
		name  string
		head  []byte
		valid bool
		want  bool
	}{
		{"text", []byte("D(b) C(#fff)"), true, false},
		{"bmp magic text", []byte("BM(1px) D(b)"), true, false},
		{"gif magic text", []byte("GIF89a is old"), true, false},
		{"zip magic text", []byte("PK\x03\x04 D(b)"), true, false},
		{"png", png, false, true},
		{"zip", []byte("PK\x03\x04\x14\xff\xfe"), false, true},
		{"nul", []byte("D(b)\x00"), true, true},
		{"legacy text", []byte("D(b) \xcf\xf0\xe8"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBinary(tt.head, tt.valid); got != tt.want {
				t.Errorf("isBinary(%q) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}

func TestHasSourceExt(t *testing.T) {
	exts := []string{".htm", ".html", ".jsx"}
	tests := map[string]bool{
		"index.html":    true,
		"INDEX.HTML":    true,
		"dir/app.jsx":   true,
		"page.htm":      true,
		"style.css":     false,
		"Makefile":      false,
		"archive.html~": false,
	}
	for name, want := range tests {
		if got := hasSourceExt(name, exts); got != want {
			t.Errorf("hasSourceExt(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	arc := filepath.Join(dir, "src.bin")
	f, err := os.Create(arc)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("index.html")
	_, _ = w.Write([]byte("D(b)"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	plain := filepath.Join(dir, "index.zip")
	if err := os.WriteFile(plain, []byte("D(b)"), 0644); err != nil {
		t.Fatal(err)
	}

	if ok, err := isArchiveFile(arc); err != nil || !ok {
		t.Errorf("isArchiveFile(zip) = %v, %v", ok, err)
	}
	if ok, err := isArchiveFile(plain); err != nil || ok {
		t.Errorf("isArchiveFile(text) = %v, %v", ok, err)
	}
	if _, err := isArchiveFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("isArchiveFile(missing) expected error")
	}
}
