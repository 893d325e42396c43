package allowance

// Allowance grants an employee an amount, either flat or as a percentage
// of salary. AllowanceTypeName and IsPercentage are snapshotted from the
// referenced type at creation time and never re-synced afterward.
type Allowance struct {
	ID                int
	EmployeeID        int
	AllowanceTypeID   int
	AllowanceTypeName string
	Amount            float64
	IsPercentage      bool
}
