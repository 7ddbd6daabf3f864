package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestNewLocal(t *testing.T) {
	t.Run("Directory", func(t *testing.T) {
		dir := t.TempDir()
		backend, err := NewLocal(dir)
		if err != nil {
			t.Fatalf("NewLocal failed: %v", err)
		}
		defer backend.Close()

		if !filepath.IsAbs(backend.Root()) {
			t.Errorf("root %q is not absolute", backend.Root())
		}
	})

	t.Run("MissingPath", func(t *testing.T) {
		if _, err := NewLocal(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Fatal("expected error for missing path")
		}
	})

	t.Run("RegularFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewLocal(path); err == nil {
			t.Fatal("expected error for non-directory root")
		}
	})
}

func TestLocalList(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	for _, name := range []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()

	files, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var rels []string
	for _, f := range files {
		if f.Name == "" {
			t.Errorf("file %q has empty name", f.Path)
		}
		if !filepath.IsAbs(f.Path) {
			t.Errorf("path %q is not absolute", f.Path)
		}
		rels = append(rels, filepath.ToSlash(f.RelativePath))
	}
	sort.Strings(rels)

	want := []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"}
	if len(rels) != len(want) {
		t.Fatalf("got %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Fatalf("got %v, want %v", rels, want)
		}
	}
}

func TestLocalListCancelled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := backend.List(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestLocalStatAndRead(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.bin"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	backend, err := NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()

	t.Run("StatRelative", func(t *testing.T) {
		info, err := backend.Stat(ctx, "data.bin")
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if info.Size != 5 {
			t.Errorf("size = %d, want 5", info.Size)
		}
		if info.Name != "data.bin" || info.IsDir {
			t.Errorf("info = %+v", info)
		}
	})

	t.Run("StatAbsolute", func(t *testing.T) {
		info, err := backend.Stat(ctx, filepath.Join(backend.Root(), "data.bin"))
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if info.Size != 5 {
			t.Errorf("size = %d, want 5", info.Size)
		}
	})

	t.Run("Read", func(t *testing.T) {
		rc, err := backend.Read(ctx, "data.bin")
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "hello" {
			t.Errorf("content = %q", string(data))
		}
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := backend.Exists(ctx, "data.bin")
		if err != nil || !ok {
			t.Errorf("Exists(data.bin) = %v, %v", ok, err)
		}
		ok, err = backend.Exists(ctx, "nope.bin")
		if err != nil || ok {
			t.Errorf("Exists(nope.bin) = %v, %v", ok, err)
		}
	})
}
