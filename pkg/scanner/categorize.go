package scanner

import (
	"path/filepath"
	"strings"

	"github.com/LachsProducktions/mediascan/pkg/models"
)

// Fixed classification tables. Categorization depends only on the
// extension, never on content or name.
var videoExts = map[string]struct{}{
	".mp4": {}, ".mkv": {}, ".avi": {}, ".mov": {}, ".flv": {}, ".wmv": {},
	".webm": {}, ".ts": {}, ".m2ts": {}, ".vob": {}, ".mpeg": {}, ".mpg": {},
	".ogv": {}, ".3gp": {}, ".f4v": {}, ".mxf": {}, ".hevc": {}, ".h264": {},
	".h265": {},
}

var audioExts = map[string]struct{}{
	".mp3": {}, ".wav": {}, ".flac": {}, ".aac": {}, ".m4a": {}, ".ogg": {},
	".opus": {}, ".wma": {}, ".aiff": {}, ".alac": {}, ".mid": {}, ".midi": {},
	".amr": {}, ".ape": {}, ".ra": {}, ".rm": {},
}

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".bmp": {}, ".gif": {}, ".tiff": {},
	".tif": {}, ".heic": {}, ".webp": {}, ".raw": {}, ".cr2": {}, ".nef": {},
	".orf": {}, ".arw": {}, ".dng": {}, ".psd": {}, ".svg": {},
}

// Ext returns the lower-cased extension of name, leading dot included.
// A dot-file such as ".mp3" is a bare name, not an extension, and yields
// the empty string.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(ext)
}

// Categorize maps a lower-cased extension (leading dot included) to its
// media category. Unknown extensions map to Other.
func Categorize(ext string) models.Category {
	if _, ok := videoExts[ext]; ok {
		return models.CategoryVideos
	}
	if _, ok := audioExts[ext]; ok {
		return models.CategoryMusic
	}
	if _, ok := imageExts[ext]; ok {
		return models.CategoryPhotos
	}
	return models.CategoryOther
}
