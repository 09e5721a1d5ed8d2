package attendance

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusPartial = "Partial"

	ActionClockIn    = "clock_in"
	ActionClockOut   = "clock_out"
	ActionBreakStart = "break_start"
	ActionBreakEnd   = "break_end"
)
