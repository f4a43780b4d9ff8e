package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Decimal with optional comma thousands groups, e.g. 50,000 or 80000.50
var salaryNumberRe = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?`)

// Shilling-prefixed amount buried in prose, e.g. "Ksh. 60,000 - 90,000".
var salarySnippetRe = regexp.MustCompile(`(?i)(?:ush|kes|ksh\.?|shs)[\s\d,\.]+(?:\s*-\s*[\d,\.]+)?`)

// SalarySnippet finds a shilling-denominated salary fragment inside free
// text, for postings that mention pay mid-description instead of in a
// dedicated field. Empty string when nothing matches.
func SalarySnippet(text string) string {
	return salarySnippetRe.FindString(text)
}

// SalaryRange pulls a salary floor/ceiling and currency out of free text.
// One number is treated as a floor only; two or more become min/max of all
// matches regardless of the order they appeared. Deliberately lossy: "50k"
// style units are not expanded.
func SalaryRange(text string) (min, max *float64, currency string) {
	currency = "KES"
	if text == "" {
		return nil, nil, currency
	}

	if strings.Contains(text, "$") || strings.Contains(strings.ToLower(text), "usd") {
		currency = "USD"
	}

	var nums []float64
	for _, m := range salaryNumberRe.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}

	switch {
	case len(nums) == 0:
		return nil, nil, currency
	case len(nums) == 1:
		return &nums[0], nil, currency
	}

	lo, hi := nums[0], nums[0]
	for _, v := range nums[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return &lo, &hi, currency
}
