package storage

import (
	"strconv"
	"strings"

	"github.com/fwidmann/ringlog/internal/models"
)

// The original database kept the per-level arrays as comma separated
// text columns; the format is kept so existing databases stay readable.

func joinInts(values [4]int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func splitInts(raw string) [4]int {
	var values [4]int
	i := 0
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || i >= len(values) {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		values[i] = n
		i++
	}
	return values
}

func joinHashtags(tags [3]string) string {
	parts := make([]string, len(tags))
	copy(parts, tags[:])
	return strings.Join(parts, ",")
}

func splitHashtags(raw string) [3]string {
	tags := [3]string{models.HashtagEmpty, models.HashtagEmpty, models.HashtagEmpty}
	i := 0
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || i >= len(tags) {
			continue
		}
		tag, err := models.ParseHashtag(part)
		if err != nil {
			tag = models.HashtagEmpty
		}
		tags[i] = tag
		i++
	}
	return tags
}
