package credit

// ExpiredLicenseKey is the license key a validator reports once its
// service license has lapsed.
const ExpiredLicenseKey = "EXPIRED"

// Validator checks frequent-flyer numbers against the loyalty program.
type Validator interface {
	IsValid(number string) bool
}

// OutValidator is the output-parameter form of Validator: the result is
// written through isValid instead of being returned.
type OutValidator interface {
	CheckValid(number string, isValid *bool)
}

// LicensedValidator is implemented by validators that expose the license
// key of the backing service.
type LicensedValidator interface {
	LicenseKey() string
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(number string) bool

// IsValid calls f(number).
func (f ValidatorFunc) IsValid(number string) bool {
	return f(number)
}

func licenseExpired(v Validator) bool {
	lv, ok := v.(LicensedValidator)
	return ok && lv.LicenseKey() == ExpiredLicenseKey
}
