// Package creditfakes provides frequent-flyer validator doubles for tests.
package creditfakes

// Validator is a stubbed frequent-flyer validator that records every call.
//
// Results for specific numbers are set with Returns; ReturnsForAny sets the
// answer for every other number. In strict mode a number with no stubbed
// answer is recorded in Unexpected and reported invalid.
type Validator struct {
	Results    map[string]bool
	Strict     bool
	Key        string
	Calls      []string
	OutCalls   []string
	Unexpected []string

	anySet   bool
	anyValid bool
}

// NewValidator constructs a loose Validator: unstubbed numbers are invalid.
func NewValidator() *Validator {
	return &Validator{Results: make(map[string]bool)}
}

// NewStrictValidator constructs a Validator that flags unstubbed numbers.
func NewStrictValidator() *Validator {
	v := NewValidator()
	v.Strict = true
	return v
}

// Returns stubs the answer for one number.
func (v *Validator) Returns(number string, valid bool) *Validator {
	v.Results[number] = valid
	return v
}

// ReturnsForAny stubs the answer for every number without a specific stub.
func (v *Validator) ReturnsForAny(valid bool) *Validator {
	v.anySet = true
	v.anyValid = valid
	return v
}

// WithLicenseKey sets the key reported by LicenseKey.
func (v *Validator) WithLicenseKey(key string) *Validator {
	v.Key = key
	return v
}

func (v *Validator) IsValid(number string) bool {
	v.Calls = append(v.Calls, number)
	return v.answer(number)
}

func (v *Validator) CheckValid(number string, isValid *bool) {
	v.OutCalls = append(v.OutCalls, number)
	*isValid = v.answer(number)
}

func (v *Validator) LicenseKey() string {
	return v.Key
}

// TotalCalls counts calls through both lookup forms.
func (v *Validator) TotalCalls() int {
	return len(v.Calls) + len(v.OutCalls)
}

func (v *Validator) answer(number string) bool {
	if valid, ok := v.Results[number]; ok {
		return valid
	}
	if v.anySet {
		return v.anyValid
	}
	if v.Strict {
		v.Unexpected = append(v.Unexpected, number)
	}
	return false
}

// InValidator only implements the returning lookup form.
type InValidator struct {
	Valid bool
	Calls []string
}

func (v *InValidator) IsValid(number string) bool {
	v.Calls = append(v.Calls, number)
	return v.Valid
}
