package payslip

type CreatePayslipRequest struct {
	EmployeeID      int     `json:"employeeId" binding:"required"`
	Period          string  `json:"period" binding:"required"`
	GrossSalary     float64 `json:"grossSalary" binding:"gte=0"`
	TotalDeductions float64 `json:"totalDeductions" binding:"gte=0"`
	Status          string  `json:"status" binding:"omitempty,oneof=draft approved paid"`
	PaymentDate     *string `json:"paymentDate"`
}

type UpdatePayslipRequest struct {
	Period          *string  `json:"period"`
	GrossSalary     *float64 `json:"grossSalary" binding:"omitempty,gte=0"`
	TotalDeductions *float64 `json:"totalDeductions" binding:"omitempty,gte=0"`
	Status          *string  `json:"status" binding:"omitempty,oneof=draft approved paid"`
	PaymentDate     *string  `json:"paymentDate"`
}

type PayslipResponse struct {
	ID              int     `json:"id"`
	EmployeeID      int     `json:"employeeId"`
	EmployeeName    string  `json:"employeeName"`
	Period          string  `json:"period"`
	GrossSalary     float64 `json:"grossSalary"`
	TotalDeductions float64 `json:"totalDeductions"`
	TaxAmount       float64 `json:"taxAmount"`
	NetSalary       float64 `json:"netSalary"`
	Status          string  `json:"status"`
	PaymentDate     *string `json:"paymentDate"`
}

func mapToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		Period:          p.Period,
		GrossSalary:     p.GrossSalary,
		TotalDeductions: p.TotalDeductions,
		TaxAmount:       p.TaxAmount,
		NetSalary:       p.NetSalary,
		Status:          p.Status,
		PaymentDate:     p.PaymentDate,
	}
}

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapToResponse(p)
	}
	return resp
}
