package common

import (
	"fmt"
)

// FormatBytes renders a byte count in human-readable units.
func FormatBytes(sizeBytes uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	unitIndex := 0
	size := float64(sizeBytes)

	for size >= 1024 && unitIndex < len(units)-1 {
		size /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.2f%s", size, units[unitIndex])
}

// FormatCurrency renders a won amount with thousands separators.
func FormatCurrency(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if amount < 0 {
		return "-" + string(out) + " KRW"
	}
	return string(out) + " KRW"
}
