package attendance

// Summarize folds a set of records into shift and absence totals. Only
// present rows contribute shifts (nil shift count counts as one); absent rows
// increment AbsentDays; anything else contributes nothing. A shift count
// stored on a non-present row never counts.
func Summarize(records []Record) MonthSummary {
	var summary MonthSummary
	for _, rec := range records {
		switch rec.Status {
		case StatusPresent:
			shifts := 1
			if rec.ShiftCount != nil {
				shifts = *rec.ShiftCount
			}
			summary.TotalShifts += shifts
		case StatusAbsent:
			summary.AbsentDays++
		}
	}
	return summary
}
