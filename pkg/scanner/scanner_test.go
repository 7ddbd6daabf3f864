package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LachsProducktions/mediascan/pkg/models"
)

// writeFiles creates the named files under dir with the given content
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestScan(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyDirectory", func(t *testing.T) {
		dir := t.TempDir()
		calls := 0

		items, err := New(nil, nil).Scan(ctx, dir, Options{
			Progress: func(percent int, path string) { calls++ },
		})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
		if calls != 0 {
			t.Errorf("progress invoked %d times on empty dir, want 0", calls)
		}
	})

	t.Run("MissingRoot", func(t *testing.T) {
		_, err := New(nil, nil).Scan(ctx, filepath.Join(t.TempDir(), "nope"), Options{})
		if err == nil {
			t.Fatal("expected error for missing root")
		}
	})

	t.Run("RecordsAndProgress", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"movie.mkv":          "0123456789",
			"song.mp3":           "abc",
			"photo.jpg":          "x",
			"sub/dir/readme.txt": "hello",
		})

		var percents []int
		items, err := New(nil, nil).Scan(ctx, dir, Options{
			Progress: func(percent int, path string) {
				percents = append(percents, percent)
			},
		})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}

		if len(items) != 4 {
			t.Fatalf("got %d items, want 4", len(items))
		}
		if len(percents) != 4 {
			t.Fatalf("progress invoked %d times, want 4", len(percents))
		}
		for i := 1; i < len(percents); i++ {
			if percents[i] < percents[i-1] {
				t.Errorf("progress decreased: %v", percents)
			}
		}
		if percents[len(percents)-1] != 100 {
			t.Errorf("final percent = %d, want 100", percents[len(percents)-1])
		}

		byName := make(map[string]models.ItemRecord)
		for _, item := range items {
			byName[item.Name] = item
		}

		movie := byName["movie.mkv"]
		if movie.Category != models.CategoryVideos {
			t.Errorf("movie category = %s, want Videos", movie.Category)
		}
		if movie.Ext != ".mkv" {
			t.Errorf("movie ext = %q, want .mkv", movie.Ext)
		}
		if movie.Size == nil || *movie.Size != 10 {
			t.Errorf("movie size = %v, want 10", movie.Size)
		}
		if movie.SizeDisplay != "10.0 B" {
			t.Errorf("movie size display = %q, want 10.0 B", movie.SizeDisplay)
		}
		// no prober configured: duration degrades, never errors
		if movie.Duration != nil || movie.DurationDisplay != "N/A" {
			t.Errorf("movie duration = %v/%q, want nil/N/A", movie.Duration, movie.DurationDisplay)
		}
		if movie.Hash != "" {
			t.Errorf("movie hash = %q, want empty without IncludeHash", movie.Hash)
		}

		if byName["photo.jpg"].Category != models.CategoryPhotos {
			t.Errorf("photo category = %s", byName["photo.jpg"].Category)
		}
		if byName["readme.txt"].Category != models.CategoryOther {
			t.Errorf("readme category = %s", byName["readme.txt"].Category)
		}
		if byName["readme.txt"].DurationDisplay != "N/A" {
			t.Errorf("readme duration display = %q", byName["readme.txt"].DurationDisplay)
		}
	})

	t.Run("DotFileHasNoExtension", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{".mp3": "not audio"})

		items, err := New(nil, nil).Scan(ctx, dir, Options{})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Ext != "" {
			t.Errorf("ext = %q, want empty for dot-file", items[0].Ext)
		}
		if items[0].Category != models.CategoryOther {
			t.Errorf("category = %s, want Other", items[0].Category)
		}
		if items[0].DurationDisplay != "N/A" {
			t.Errorf("duration display = %q", items[0].DurationDisplay)
		}
	})

	t.Run("IncludeHash", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"data.bin": "hello"})

		items, err := New(nil, nil).Scan(ctx, dir, Options{IncludeHash: true})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}

		const wantHash = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
		if items[0].Hash != wantHash {
			t.Errorf("hash = %q, want %q", items[0].Hash, wantHash)
		}
	})
}

func TestSort(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	n := func(v int64) *int64 { return &v }

	items := []models.ItemRecord{
		{Name: "Beta.mp3", Ext: ".mp3", Size: n(300), Duration: f(10)},
		{Name: "alpha.mkv", Ext: ".mkv", Size: n(100), Duration: nil},
		{Name: "Gamma.mkv", Ext: ".mkv", Size: n(200), Duration: f(5)},
		{Name: "delta.mkv", Ext: ".mkv", Size: n(200), Duration: f(5)},
	}

	names := func(sorted []models.ItemRecord) []string {
		out := make([]string, len(sorted))
		for i, it := range sorted {
			out[i] = it.Name
		}
		return out
	}

	equal := func(a, b []string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	t.Run("ByName", func(t *testing.T) {
		got := names(Sort(items, SortByName))
		want := []string{"alpha.mkv", "Beta.mp3", "delta.mkv", "Gamma.mkv"}
		if !equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("BySizeWithNameTieBreak", func(t *testing.T) {
		got := names(Sort(items, SortBySize))
		want := []string{"alpha.mkv", "delta.mkv", "Gamma.mkv", "Beta.mp3"}
		if !equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("ByDurationMissingLast", func(t *testing.T) {
		got := names(Sort(items, SortByDuration))
		want := []string{"delta.mkv", "Gamma.mkv", "Beta.mp3", "alpha.mkv"}
		if !equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("ByExt", func(t *testing.T) {
		got := names(Sort(items, SortByExt))
		want := []string{"alpha.mkv", "delta.mkv", "Gamma.mkv", "Beta.mp3"}
		if !equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		before := names(items)
		Sort(items, SortByName)
		if !equal(names(items), before) {
			t.Error("Sort mutated its input")
		}
	})
}
