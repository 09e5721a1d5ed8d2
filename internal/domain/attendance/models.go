package attendance

// Record is one attendance row per employee per day. Clock fields are
// RFC 3339 timestamps; total/overtime hours are computed server-side.
type Record struct {
	ID            string   `json:"id" validate:"required"`
	EmployeeID    string   `json:"employee_id" validate:"required"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	ClockIn       *string  `json:"clock_in,omitempty"`
	ClockOut      *string  `json:"clock_out,omitempty"`
	BreakStart    *string  `json:"break_start,omitempty"`
	BreakEnd      *string  `json:"break_end,omitempty"`
	TotalHours    *float64 `json:"total_hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Status        string   `json:"status" validate:"required,oneof=Present Absent Late Partial"`
	Location      *string  `json:"location,omitempty"`
	DeviceInfo    *string  `json:"device_info,omitempty"`
	CreatedAt     *string  `json:"created_at,omitempty"`
}

// ClockEvent is an append/transition operation against today's record,
// never a field edit.
type ClockEvent struct {
	EmployeeID string  `json:"employee_id"`
	Action     string  `json:"action"`
	Timestamp  string  `json:"timestamp"`
	Location   *string `json:"location,omitempty"`
	DeviceInfo *string `json:"device_info,omitempty"`
}

// Summary aggregates one employee's month.
type Summary struct {
	TotalDays   int     `json:"total_days"`
	PresentDays int     `json:"present_days"`
	AbsentDays  int     `json:"absent_days"`
	LateDays    int     `json:"late_days"`
	TotalHours  float64 `json:"total_hours"`
}
