package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

type zipEntry struct {
	name    string
	content string
}

func makeZip(t *testing.T, entries ...zipEntry) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func collect(t *testing.T, archive, prefix string) []string {
	t.Helper()
	var visited []string
	err := Walk(archive, prefix, func(a string, f *zip.File) error {
		if a != archive {
			t.Errorf("archive = %s, want %s", a, archive)
		}
		visited = append(visited, f.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited
}

func TestWalk(t *testing.T) {
	archive := makeZip(t,
		zipEntry{"pages/page10.html", "<p>"},
		zipEntry{"pages/page2.html", "<p>"},
		zipEntry{"pages/", ""},
		zipEntry{"src/app.jsx", "x"},
		zipEntry{"index.html", "<html>"},
	)

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"index.html", "pages/page2.html", "pages/page10.html", "src/app.jsx"}},
		{"pages/", []string{"pages/page2.html", "pages/page10.html"}},
		{"Pages/", nil},
		{"missing/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := collect(t, archive, tt.prefix); !slices.Equal(got, tt.want) {
				t.Errorf("visited %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(name, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(name, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for invalid archive")
	}
	if err := Walk(filepath.Join(t.TempDir(), "none.zip"), "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	archive := makeZip(t, zipEntry{"ok.html", "1"}, zipEntry{"../evil.html", "2"})
	err := Walk(archive, "", func(string, *zip.File) error { return nil })
	if err == nil {
		t.Error("expected error for path traversal")
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	archive := makeZip(t, zipEntry{"a.html", "1"}, zipEntry{"b.html", "2"}, zipEntry{"c.html", "3"})
	stop := errors.New("stop")
	count := 0
	err := Walk(archive, "", func(string, *zip.File) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if count != 2 {
		t.Errorf("visited %d files, want 2", count)
	}
}

func TestReadFile(t *testing.T) {
	archive := makeZip(t, zipEntry{"a.html", `<div class="D(b)">`})
	err := Walk(archive, "", func(_ string, f *zip.File) error {
		data, err := ReadFile(f, 0)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != `<div class="D(b)">` {
			t.Errorf("ReadFile() = %q", data)
		}
		if _, err := ReadFile(f, 4); !errors.Is(err, ErrTooLarge) {
			t.Errorf("ReadFile() with limit error = %v, want ErrTooLarge", err)
		}
		if _, err := ReadFile(f, int64(len(data))); err != nil {
			t.Errorf("ReadFile() at exact limit error = %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a/b.html", true},
		{"a..b/c", true},
		{"/etc/passwd", false},
		{`\windows\x`, false},
		{"C:/x", false},
		{"a/../../b", false},
		{`a\..\b`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
