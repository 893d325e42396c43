package allowancetype

type CreateAllowanceTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	IsPercentage bool   `json:"isPercentage"`
	Description  string `json:"description"`
}

type UpdateAllowanceTypeRequest struct {
	Name         *string `json:"name"`
	IsPercentage *bool   `json:"isPercentage"`
	Description  *string `json:"description"`
}

type AllowanceTypeResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	IsPercentage bool   `json:"isPercentage"`
	Description  string `json:"description"`
}

func mapToResponse(at AllowanceType) AllowanceTypeResponse {
	return AllowanceTypeResponse{
		ID:           at.ID,
		Name:         at.Name,
		IsPercentage: at.IsPercentage,
		Description:  at.Description,
	}
}

func mapToListResponse(types []AllowanceType) []AllowanceTypeResponse {
	resp := make([]AllowanceTypeResponse, len(types))
	for i, at := range types {
		resp[i] = mapToResponse(at)
	}
	return resp
}
