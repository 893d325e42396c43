package employee

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Position      string  `json:"position"`
	Department    string  `json:"department" binding:"required"`
	DateHired     string  `json:"dateHired" binding:"required"`
	Salary        float64 `json:"salary" binding:"gte=0"`
	MaritalStatus string  `json:"maritalStatus" binding:"required,oneof=single married"`
}

type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"firstName"`
	LastName      *string  `json:"lastName"`
	Position      *string  `json:"position"`
	Department    *string  `json:"department"`
	DateHired     *string  `json:"dateHired"`
	Salary        *float64 `json:"salary" binding:"omitempty,gte=0"`
	MaritalStatus *string  `json:"maritalStatus" binding:"omitempty,oneof=single married"`
}

type EmployeeResponse struct {
	ID            int     `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Position      string  `json:"position"`
	Department    string  `json:"department"`
	DateHired     string  `json:"dateHired"`
	Salary        float64 `json:"salary"`
	MaritalStatus string  `json:"maritalStatus"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Position:      e.Position,
		Department:    e.Department,
		DateHired:     e.DateHired.Format(dateLayout),
		Salary:        e.Salary,
		MaritalStatus: e.MaritalStatus,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
