package file

import (
	"math"
	"strconv"
)

var sizeUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count for display using 1024-based units up to
// GB: "0 Bytes", "1.5 KB", "1 MB". Values are rounded to two decimals with
// trailing zeros stripped. Sizes beyond the GB range are clamped to GB; this
// helper targets upload listings, where such sizes cannot occur.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	// Integer math avoids float rounding at exact 1024 powers.
	exp := 0
	for n := bytes; n >= 1024 && exp < len(sizeUnits)-1; n /= 1024 {
		exp++
	}

	value := float64(bytes) / math.Pow(1024, float64(exp))
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[exp]
}
