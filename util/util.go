package util

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count such as "3.4 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(fileSizeUnits) {
		i = len(fileSizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))

	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64) + " " + fileSizeUnits[i]
}

// FormatDuration renders whole seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// SortedKeys returns the keys of m sorted, with their counts ranked first when
// byCount is set.
func SortedKeys(m map[string]int, byCount bool) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	if byCount {
		sort.SliceStable(keys, func(i, j int) bool {
			return m[keys[i]] > m[keys[j]]
		})
	}
	return keys
}
