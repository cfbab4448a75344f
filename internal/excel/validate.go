package excel

// Validation checks presence of required fields only. Numeric coercion and
// member matching happen downstream; a row that fails here is dropped from
// the batch and logged, never surfaced per-row to the uploader.

// ValidateActivityRecord checks a normalized activity record.
func ValidateActivityRecord(rec Record) (bool, []string) {
	var errs []string
	if rec[FieldMemberName] == "" {
		errs = append(errs, "memberName is required")
	}
	if rec[FieldAttendance] == "" {
		errs = append(errs, "attendance is required")
	}
	return len(errs) == 0, errs
}

// ValidateMemberRow checks a raw member-roster row against the fixed import
// headers.
func ValidateMemberRow(row Row) (bool, []string) {
	var errs []string
	for _, required := range []string{"Phone_ID", "Member_Number", "Name", "Industry", "Join_Date", "Status"} {
		if row[required] == "" {
			errs = append(errs, required+" is required")
		}
	}
	return len(errs) == 0, errs
}

// ValidateTermRow checks a raw meeting-calendar row.
func ValidateTermRow(row Row) (bool, []string) {
	var errs []string
	for _, required := range []string{"terms", "start time", "end time", "weekNumber", "date", "meeting or not"} {
		if row[required] == "" {
			errs = append(errs, required+" is required")
		}
	}
	return len(errs) == 0, errs
}
