package utils

import "fmt"

// FormatWithCommas formats an integer with comma separators, used by the CLI
// when printing frequency scores.
func FormatWithCommas(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	if neg {
		return "-" + result
	}
	return result
}
