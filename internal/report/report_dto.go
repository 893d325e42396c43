package report

type DepartmentRollup struct {
	Department      string  `json:"department"`
	EmployeeCount   int     `json:"employeeCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
}

type PayrollSummaryTotal struct {
	EmployeeCount   int     `json:"employeeCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
}

type PayrollSummaryResponse struct {
	Period      string              `json:"period,omitempty"`
	Department  string              `json:"department,omitempty"`
	Departments []DepartmentRollup  `json:"departments"`
	GrandTotal  PayrollSummaryTotal `json:"grandTotal"`
}

type EmployeeReportRow struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	DateHired  string  `json:"dateHired"`
	Salary     float64 `json:"salary"`
}

type EmployeeReportResponse struct {
	Department    string              `json:"department,omitempty"`
	Employees     []EmployeeReportRow `json:"employees"`
	TotalCount    int                 `json:"totalCount"`
	AverageSalary float64             `json:"averageSalary"`
}

type AllowanceReportRow struct {
	ID                int     `json:"id"`
	EmployeeName      string  `json:"employeeName"`
	AllowanceTypeName string  `json:"allowanceTypeName"`
	Amount            float64 `json:"amount"`
	IsPercentage      bool    `json:"isPercentage"`
}

type AllowanceReportResponse struct {
	Allowances []AllowanceReportRow `json:"allowances"`
	TotalCount int                  `json:"totalCount"`
}
