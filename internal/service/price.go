package service

import (
	"strconv"
	"strings"
)

// ParsePrice reads a currency literal such as "18,50€" or "$ 45,00".
// Everything except digits, commas and dots is stripped, the first comma
// becomes a decimal point, and the longest leading decimal number is parsed.
// Text with no number in it is worth 0.
func ParsePrice(price string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, price)
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	end, digits, dot := 0, 0, false
	for end < len(cleaned) {
		c := cleaned[end]
		if c == '.' {
			if dot {
				break
			}
			dot = true
		} else if c >= '0' && c <= '9' {
			digits++
		} else {
			break
		}
		end++
	}
	if digits == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
