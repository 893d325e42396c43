package payslip

const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

// Payslip snapshots the employee name at creation time; a later rename
// does not rewrite old payslips. TaxAmount and NetSalary are derived at
// write time and never trusted from the caller.
type Payslip struct {
	ID              int
	EmployeeID      int
	EmployeeName    string
	Period          string // YYYY-MM
	GrossSalary     float64
	TotalDeductions float64
	TaxAmount       float64
	NetSalary       float64
	Status          string
	PaymentDate     *string // YYYY-MM-DD, required once Status is paid
}
