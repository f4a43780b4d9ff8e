package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// "3-5 years", "3+ yrs", "5 years experience"
var experienceRe = regexp.MustCompile(`(\d+)\s*\+?(?:\s*-\s*(\d+))?\s*(?:years?|yrs?)`)

// ExperienceYears reads the first "<n>[-<m>] years" occurrence. A single
// number is a floor, with or without a trailing "+"; no match is (nil, nil).
func ExperienceYears(text string) (min, max *int) {
	if text == "" {
		return nil, nil
	}

	m := experienceRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil, nil
	}

	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, nil
	}
	min = &lo

	if m[2] != "" {
		if hi, err := strconv.Atoi(m[2]); err == nil {
			max = &hi
		}
	}
	return min, max
}
