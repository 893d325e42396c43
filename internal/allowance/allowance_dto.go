package allowance

type CreateAllowanceRequest struct {
	EmployeeID      int     `json:"employeeId" binding:"required,gt=0"`
	AllowanceTypeID int     `json:"allowanceTypeId" binding:"required,gt=0"`
	Amount          float64 `json:"amount" binding:"gte=0"`
}

type UpdateAllowanceRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gte=0"`
}

type AllowanceResponse struct {
	ID                int     `json:"id"`
	EmployeeID        int     `json:"employeeId"`
	AllowanceTypeID   int     `json:"allowanceTypeId"`
	AllowanceTypeName string  `json:"allowanceTypeName"`
	Amount            float64 `json:"amount"`
	IsPercentage      bool    `json:"isPercentage"`
}

func mapToResponse(a Allowance) AllowanceResponse {
	return AllowanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		AllowanceTypeID:   a.AllowanceTypeID,
		AllowanceTypeName: a.AllowanceTypeName,
		Amount:            a.Amount,
		IsPercentage:      a.IsPercentage,
	}
}

func mapToListResponse(allowances []Allowance) []AllowanceResponse {
	resp := make([]AllowanceResponse, len(allowances))
	for i, a := range allowances {
		resp[i] = mapToResponse(a)
	}
	return resp
}
