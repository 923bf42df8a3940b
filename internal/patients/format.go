package patients

import "regexp"

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	brDateRe  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// FormatNationalID renders an 11-digit national ID as XXX.XXX.XXX-XX.
// Anything else (empty included) is returned unchanged.
func FormatNationalID(value string) string {
	digits := Digits(value)
	if len(digits) != 11 {
		return value
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FormatMobile renders an 11-digit mobile as (XX) XXXXX-XXXX and a
// 10-digit landline as (XX) XXXX-XXXX. Other lengths are returned
// unchanged.
func FormatMobile(value string) string {
	digits := Digits(value)
	switch len(digits) {
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return value
	}
}

// FormatBirthDate renders an ISO date as DD/MM/YYYY for display. A value
// already in DD/MM/YYYY, or anything unrecognized, is returned unchanged.
func FormatBirthDate(value string) string {
	if value == "" {
		return ""
	}
	if brDateRe.MatchString(value) {
		return value
	}
	if isoDateRe.MatchString(value) {
		return value[8:] + "/" + value[5:7] + "/" + value[:4]
	}
	return value
}
