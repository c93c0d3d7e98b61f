package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var amountRegex = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*([KkMmBb])?`)
var intRegex = regexp.MustCompile(`\d+`)

// ParseRevenueMillions extracts a revenue figure in millions from a formatted
// string like "$3.2M", "$500K" or "$1.2B". Malformed input yields 0.
func ParseRevenueMillions(s string) float64 {
	m := amountRegex.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	clean := strings.ReplaceAll(m[1], ",", "")
	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || val <= 0 {
		return 0
	}

	switch strings.ToUpper(m[2]) {
	case "K":
		return val / 1000
	case "B":
		return val * 1000
	case "M":
		return val
	}
	// Bare numbers in revenue fields are already in millions.
	return val
}

// ParseTimelineMonths extracts an integer month count from free text like
// "12-18 months" (the first number wins). Week and year units are converted.
// Malformed input yields 0.
func ParseTimelineMonths(s string) int {
	m := intRegex.FindString(s)
	if m == "" {
		return 0
	}
	val, err := strconv.Atoi(m)
	if err != nil || val <= 0 {
		return 0
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "week") {
		months := val / 4
		if months < 1 {
			months = 1
		}
		return months
	}
	if strings.Contains(lower, "year") {
		return val * 12
	}
	return val
}

// ParseInvestmentMin extracts the minimum dollar amount from a formatted
// range like "$250K - $750K" or a single figure like "$1.2M". Malformed
// input yields 0.
func ParseInvestmentMin(s string) float64 {
	matches := amountRegex.FindAllStringSubmatch(s, -1)

	min := 0.0
	for _, m := range matches {
		clean := strings.ReplaceAll(m[1], ",", "")
		val, err := strconv.ParseFloat(clean, 64)
		if err != nil || val <= 0 {
			continue
		}
		switch strings.ToUpper(m[2]) {
		case "K":
			val *= 1_000
		case "M":
			val *= 1_000_000
		case "B":
			val *= 1_000_000_000
		}
		if min == 0 || val < min {
			min = val
		}
	}
	return min
}
