package scanner

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0.0 B"},
		{1, "1.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{1024 * 1024 * 1024, "1.0 GiB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TiB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1.0 PiB"},
		{1024 * 1024 * 1024 * 1024 * 1024 * 1024, "1024.0 PiB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.n); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		duration *float64
		want     string
	}{
		{"Nil", nil, "N/A"},
		{"Zero", f(0), "N/A"},
		{"Negative", f(-5), "N/A"},
		{"Seconds", f(42), "00:42"},
		{"Minutes", f(125), "02:05"},
		{"Hours", f(3723), "1:02:03"},
		{"ManyHours", f(36610), "10:10:10"},
		{"FractionTruncated", f(59.9), "00:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.want {
				t.Errorf("FormatDuration = %q, want %q", got, tt.want)
			}
		})
	}
}
