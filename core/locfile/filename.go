package locfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampedName builds "{base}{suffix}_{YYYYMMDD_HHMMSS}{ext}". A non-empty
// suffix is prefixed with an underscore when the caller omitted one.
func TimestampedName(base, suffix, ext string) string {
	timestamp := time.Now().Format("20060102_150405")
	if suffix != "" && !strings.HasPrefix(suffix, "_") {
		suffix = "_" + suffix
	}
	if suffix != "" {
		return fmt.Sprintf("%s%s_%s%s", base, suffix, timestamp, ext)
	}
	return fmt.Sprintf("%s_%s%s", base, timestamp, ext)
}

// UniquePath returns path unchanged if it is free, otherwise appends _{n} to
// the base name, incrementing n until an unused path is found.
func UniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", base, counter, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
