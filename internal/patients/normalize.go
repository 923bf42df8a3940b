package patients

import "strings"

// Normalize canonicalizes a raw submission: full name and email are
// trimmed, phone and national ID are reduced to digits, and the birth
// date is rewritten to ISO when it arrives as DD/MM/YYYY. It fails only
// on the two required fields; sex and email pass through untouched so a
// soft field never blocks a submission.
func Normalize(req SubmitRequest) (Patient, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return Patient{}, ErrNameRequired
	}

	mobile := Digits(req.MobileNumber)
	if mobile == "" {
		return Patient{}, ErrMobileRequired
	}

	return Patient{
		FullName:     name,
		MobileNumber: mobile,
		NationalID:   Digits(req.NationalID),
		Sex:          req.Sex,
		BirthDate:    NormalizeBirthDate(req.BirthDate),
		Email:        strings.TrimSpace(req.Email),
	}, nil
}

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// NormalizeBirthDate converts DD/MM/YYYY to YYYY-MM-DD. ISO input passes
// through, and any other non-empty value is kept as-is; unrecognized
// dates are treated as opaque text downstream.
func NormalizeBirthDate(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	if isoDateRe.MatchString(raw) {
		return raw
	}
	if brDateRe.MatchString(raw) {
		parts := strings.Split(raw, "/")
		return parts[2] + "-" + parts[1] + "-" + parts[0]
	}
	return raw
}
