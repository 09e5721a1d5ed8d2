package employees

const (
	StatusActive     = "Active"
	StatusInactive   = "Inactive"
	StatusTerminated = "Terminated"

	TypeFullTime = "Full-time"
	TypePartTime = "Part-time"
	TypeContract = "Contract"
	TypeIntern   = "Intern"
)
