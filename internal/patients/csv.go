package patients

import (
	"regexp"
	"strings"
)

var csvHeader = []string{"Full Name", "Mobile Number", "National ID", "Sex", "Birth Date", "Email"}

var newlineRe = regexp.MustCompile(`\r?\n`)

// ToCSV serializes the record set for administrative export: a fixed
// header row plus one display-formatted line per record. Embedded
// newlines are collapsed to a single space so every record stays on one
// line. Fields are joined without CSV quoting to stay byte-compatible
// with the legacy exporter; a comma inside a field shifts columns.
func ToCSV(set []Patient) string {
	lines := make([]string, 0, len(set)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, p := range set {
		fields := []string{
			p.FullName,
			FormatMobile(p.MobileNumber),
			FormatNationalID(p.NationalID),
			p.Sex,
			FormatBirthDate(p.BirthDate),
			p.Email,
		}
		for i, f := range fields {
			fields[i] = newlineRe.ReplaceAllString(f, " ")
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}
