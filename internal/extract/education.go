package extract

import "strings"

// EducationNotSpecified is the default when no level is mentioned.
const EducationNotSpecified = "Not Specified"

var educationRules = []struct {
	level string
	any   []string
}{
	{"PhD", []string{"phd", "doctorate"}},
	{"Master's", []string{"master", "mba", "msc"}},
	{"Bachelor's", []string{"bachelor", "bsc", "degree"}},
	{"Diploma", []string{"diploma"}},
	{"Certificate", []string{"certificate"}},
}

// EducationLevel picks the highest education level mentioned in the text.
// Rules run in priority order, so "PhD or Bachelor's" resolves to PhD.
func EducationLevel(text string) string {
	low := strings.ToLower(text)
	for _, r := range educationRules {
		for _, needle := range r.any {
			if strings.Contains(low, needle) {
				return r.level
			}
		}
	}
	return EducationNotSpecified
}
