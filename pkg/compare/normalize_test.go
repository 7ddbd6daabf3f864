package compare

import (
	"testing"

	"github.com/LachsProducktions/mediascan/pkg/models"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercases", "Movie.MKV", "movie mkv"},
		{"PunctuationToSpaces", "a.b_c-d[e](f)", "a b c d e f"},
		{"StripsResolution", "Show.S01E01.1080p.mkv", "show s01e01 mkv"},
		{"Strips4K", "Film [4K] UHD.mkv", "film mkv"},
		{"CollapsesWhitespace", "  a   b  ", "a b"},
		{"PlainName", "a.mp4", "a mp4"},
		{"Empty", "", ""},
		{"OnlyPunctuation", "...", ""},
		{"ResolutionInsideWordKept", "hdmi cable.mkv", "hdmi cable mkv"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeKey(tc.in); got != tc.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}

	t.Run("ResolutionVariantsShareKey", func(t *testing.T) {
		a := NormalizeKey("Show.720p.mkv")
		b := NormalizeKey("Show.1080p.mkv")
		if a != b {
			t.Errorf("keys differ: %q vs %q", a, b)
		}
	})
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("CanonicalFields", func(t *testing.T) {
		item := normalizeRecord(models.RawRecord{
			"name":             "a.mkv",
			"path":             "/m/a.mkv",
			"size":             float64(1536),
			"size_display":     "1.5 KiB",
			"ext":              ".MKV",
			"category":         "Videos",
			"duration":         float64(90.5),
			"duration_display": "01:30",
			"sha256":           "abc",
		})

		if item.Name != "a.mkv" || item.Path != "/m/a.mkv" {
			t.Errorf("name/path = %q/%q", item.Name, item.Path)
		}
		if item.Size == nil || *item.Size != 1536 {
			t.Errorf("size = %v", item.Size)
		}
		if item.SizeDisplay != "1.5 KiB" {
			t.Errorf("size display = %q", item.SizeDisplay)
		}
		if item.Ext != ".mkv" {
			t.Errorf("ext = %q", item.Ext)
		}
		if item.Category != models.CategoryVideos {
			t.Errorf("category = %s", item.Category)
		}
		if item.Duration == nil || *item.Duration != 90.5 {
			t.Errorf("duration = %v", item.Duration)
		}
		if item.Hash != "abc" {
			t.Errorf("hash = %q", item.Hash)
		}
	})

	t.Run("LegacyCasing", func(t *testing.T) {
		item := normalizeRecord(models.RawRecord{
			"Name":         "b.mp3",
			"Path":         "/m/b.mp3",
			"Size":         float64(100),
			"Size_Display": "100.0 B",
			"Category":     "Music",
		})

		if item.Name != "b.mp3" {
			t.Errorf("name = %q", item.Name)
		}
		if item.Size == nil || *item.Size != 100 {
			t.Errorf("size = %v", item.Size)
		}
		if item.SizeDisplay != "100.0 B" {
			t.Errorf("size display = %q", item.SizeDisplay)
		}
		if item.Category != models.CategoryMusic {
			t.Errorf("category = %s", item.Category)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		item := normalizeRecord(models.RawRecord{"name": "c.avi"})

		if item.Path != "c.avi" {
			t.Errorf("path = %q, want fallback to name", item.Path)
		}
		if item.Size != nil {
			t.Errorf("size = %v, want nil", item.Size)
		}
		if item.Ext != ".avi" {
			t.Errorf("ext = %q, want derived from name", item.Ext)
		}
		if item.Category != models.CategoryOther {
			t.Errorf("category = %s, want Other", item.Category)
		}
		if item.DurationDisplay != "N/A" {
			t.Errorf("duration display = %q", item.DurationDisplay)
		}
	})

	t.Run("DotFileNameYieldsNoExt", func(t *testing.T) {
		item := normalizeRecord(models.RawRecord{"name": ".mp3"})
		if item.Ext != "" {
			t.Errorf("ext = %q, want empty for dot-file name", item.Ext)
		}
	})

	t.Run("SizeDisplayFallsBackToNumericSize", func(t *testing.T) {
		item := normalizeRecord(models.RawRecord{"name": "d.mkv", "size": float64(2048)})
		if item.SizeDisplay != "2048" {
			t.Errorf("size display = %q, want 2048", item.SizeDisplay)
		}
	})

	t.Run("StringSizeParsed", func(t *testing.T) {
		item := normalizeRecord(models.RawRecord{"name": "e.mkv", "size": " 512 "})
		if item.Size == nil || *item.Size != 512 {
			t.Errorf("size = %v, want 512", item.Size)
		}
	})
}
