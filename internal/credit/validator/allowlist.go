// Package validator holds concrete frequent-flyer validators.
package validator

import "strings"

// Config configures an AllowList from the environment.
type Config struct {
	ValidNumbers []string `env:"SCREENING_VALID_NUMBERS" envSeparator:","`
	LicenseKey   string   `env:"SCREENING_LICENSE_KEY"`
}

// AllowList accepts a fixed set of frequent-flyer numbers.
type AllowList struct {
	numbers    map[string]struct{}
	licenseKey string
}

// NewAllowList builds an AllowList. Numbers are trimmed and blanks dropped;
// matching is case-sensitive.
func NewAllowList(numbers []string, licenseKey string) *AllowList {
	set := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return &AllowList{numbers: set, licenseKey: strings.TrimSpace(licenseKey)}
}

// FromConfig builds an AllowList from cfg.
func FromConfig(cfg Config) *AllowList {
	return NewAllowList(cfg.ValidNumbers, cfg.LicenseKey)
}

// Len returns the number of accepted numbers.
func (a *AllowList) Len() int {
	return len(a.numbers)
}

// IsValid reports whether number is on the list.
func (a *AllowList) IsValid(number string) bool {
	_, ok := a.numbers[strings.TrimSpace(number)]
	return ok
}

// CheckValid writes IsValid(number) to isValid.
func (a *AllowList) CheckValid(number string, isValid *bool) {
	*isValid = a.IsValid(number)
}

// LicenseKey returns the configured license key.
func (a *AllowList) LicenseKey() string {
	return a.licenseKey
}
