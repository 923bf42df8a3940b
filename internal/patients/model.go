package patients

// Patient is one registered contact record in canonical form:
// digits-only phone and national ID, ISO birth date, trimmed text.
// Display formatting is applied only on the way out (CSV export).
type Patient struct {
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	NationalID   string `json:"national_id"`
	Sex          string `json:"sex"`
	BirthDate    string `json:"birth_date"`
	Email        string `json:"email"`
}

// SubmitRequest is the raw form submission before normalization.
type SubmitRequest struct {
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	NationalID   string `json:"national_id"`
	Sex          string `json:"sex"`
	BirthDate    string `json:"birth_date"`
	Email        string `json:"email"`
}
