package department

type DepartmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	resp := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		resp[i] = DepartmentResponse{ID: d.ID, Name: d.Name}
	}
	return resp
}
