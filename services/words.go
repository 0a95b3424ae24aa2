package services

import "strings"

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountToWords spells out a JOD amount for the quotation footer, e.g.
// "Twelve Thousand Three Hundred Forty Five Jordanian Dinars Only".
// Fractions are dropped; negative amounts are treated as zero.
func AmountToWords(amount float64) string {
	n := int(amount)
	if n <= 0 {
		return "Zero Jordanian Dinars Only"
	}
	return convertToWords(n) + " Jordanian Dinars Only"
}

func convertToWords(n int) string {
	var parts []string
	if n >= 1000000 {
		parts = append(parts, convertUnder1000(n/1000000)+" Million")
		n %= 1000000
	}
	if n >= 1000 {
		parts = append(parts, convertUnder1000(n/1000)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, convertUnder1000(n))
	}
	return strings.Join(parts, " ")
}

func convertUnder1000(n int) string {
	if n >= 100 {
		s := onesWords[n/100] + " Hundred"
		if n%100 > 0 {
			s += " " + convertUnder100(n%100)
		}
		return s
	}
	return convertUnder100(n)
}

func convertUnder100(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	s := tensWords[n/10]
	if n%10 > 0 {
		s += " " + onesWords[n%10]
	}
	return s
}
