package patterns

import (
	"os"

	"gopkg.in/yaml.v3"

	"kazi-engine/internal/domain"
)

type overlayFile struct {
	Skills []struct {
		Name     string `yaml:"name"`
		Domain   string `yaml:"domain"`
		Category string `yaml:"category"`
	} `yaml:"skills"`
	Variants map[string]string `yaml:"variants"`
	Companies []struct {
		Alias     string `yaml:"alias"`
		Canonical string `yaml:"canonical"`
	} `yaml:"companies"`
}

// OverlayTables merges an optional skills.yml from the data dir on top of
// the given tables. A missing file is not an error; a malformed one is.
func OverlayTables(t Tables, path string) (Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		// Missing overlay should not kill startup
		return t, nil
	}

	var of overlayFile
	if err := yaml.Unmarshal(b, &of); err != nil {
		return t, err
	}

	for _, s := range of.Skills {
		t.Skills = append(t.Skills, SkillEntry{
			Name:     s.Name,
			Domain:   domain.Domain(s.Domain),
			Category: s.Category,
		})
	}
	for raw, canonical := range of.Variants {
		t.Variants = append(t.Variants, Variant{Raw: raw, Canonical: canonical})
	}
	for _, c := range of.Companies {
		t.CompanyAliases = append(t.CompanyAliases, CompanyAlias{Alias: c.Alias, Canonical: c.Canonical})
	}
	return t, nil
}
