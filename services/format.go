package services

import (
	"fmt"
	"strings"
)

// FormatJOD renders a JOD amount with thousands separators and two decimals,
// e.g. 12345.678 -> "12,345.68 JOD".
func FormatJOD(amount float64) string {
	return formatGrouped(amount) + " JOD"
}

// FormatUSD renders a USD amount, e.g. -1234.5 -> "-$1,234.50".
func FormatUSD(amount float64) string {
	if amount < 0 {
		return "-$" + formatGrouped(-amount)
	}
	return "$" + formatGrouped(amount)
}

func formatGrouped(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	grouped := applyGrouping(parts[0]) + "." + parts[1]
	if negative {
		return "-" + grouped
	}
	return grouped
}

func applyGrouping(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
