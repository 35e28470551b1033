package validators

import "time"

var doctorUnits = map[string]bool{
	"Pediatrics":       true,
	"Gynecology":       true,
	"General Medicine": true,
	"Surgery":          true,
}

var bloodGroups = map[string]bool{
	"A+": true, "B+": true, "AB+": true, "0+": true,
	"A-": true, "B-": true, "AB-": true, "0-": true,
}

var genotypes = map[string]bool{
	"AA": true, "AS": true, "SS": true,
}

func IsValidUnit(unit string) bool {
	return doctorUnits[unit]
}

func IsValidBloodGroup(group string) bool {
	return bloodGroups[group]
}

func IsValidGenotype(genotype string) bool {
	return genotypes[genotype]
}

func IsValidPhone(phone string) bool {
	return len(phone) >= 11 && len(phone) <= 15
}

// IsValidDOB requires a birth date in the past and within the last 100 years.
func IsValidDOB(dob time.Time) bool {
	now := time.Now()
	return dob.Before(now) && dob.After(now.AddDate(-100, 0, 0))
}

// ParseDOB accepts a plain date or a full RFC 3339 instant.
func ParseDOB(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
