package patients

// Action describes what an upsert did to the record set.
type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
)

// Outcome reports the upsert result. Row is the 1-based position the
// record occupies in the set after the operation.
type Outcome struct {
	Action Action `json:"action"`
	Row    int    `json:"row"`
}

// Upsert inserts rec into the set, or replaces the first record sharing
// its national ID when that ID is non-empty. Records without a national
// ID always append; there is no matching on name or phone. The set is
// mutated through the pointer and the caller must persist it afterward.
func Upsert(set *[]Patient, rec Patient) Outcome {
	if rec.NationalID != "" {
		for i, p := range *set {
			if Digits(p.NationalID) == rec.NationalID {
				(*set)[i] = rec
				return Outcome{Action: ActionUpdate, Row: i + 1}
			}
		}
	}
	*set = append(*set, rec)
	return Outcome{Action: ActionInsert, Row: len(*set)}
}
