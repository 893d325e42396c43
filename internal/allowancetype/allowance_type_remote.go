package allowancetype

import (
	"context"
	"fmt"

	"go-payroll/internal/remote"
)

// wireAllowanceType is the snake_case shape of the persistence service.
type wireAllowanceType struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	IsPercentage *bool  `json:"is_percentage,omitempty"`
	Description  string `json:"description,omitempty"`
}

//go:generate mockgen -source=allowance_type_remote.go -destination=mock/allowance_type_remote_mock.go -package=mock
type Remote interface {
	List(ctx context.Context) ([]AllowanceType, error)
	// Create returns the remote-assigned id, 0 when the response omits one.
	Create(ctx context.Context, at AllowanceType) (int, error)
	Update(ctx context.Context, id int, req UpdateAllowanceTypeRequest) error
	Delete(ctx context.Context, id int) error
}

type httpRemote struct {
	client *remote.Client
}

func NewRemote(client *remote.Client) Remote {
	return &httpRemote{client: client}
}

func (r *httpRemote) List(ctx context.Context) ([]AllowanceType, error) {
	var wire []wireAllowanceType
	if err := r.client.Get(ctx, "/allowance-types/", &wire); err != nil {
		return nil, err
	}

	types := make([]AllowanceType, len(wire))
	for i, w := range wire {
		isPercentage := false
		if w.IsPercentage != nil {
			isPercentage = *w.IsPercentage
		}
		types[i] = AllowanceType{
			ID:           w.ID,
			Name:         w.Name,
			IsPercentage: isPercentage,
			Description:  w.Description,
		}
	}
	return types, nil
}

func (r *httpRemote) Create(ctx context.Context, at AllowanceType) (int, error) {
	payload := wireAllowanceType{
		Name:         at.Name,
		IsPercentage: &at.IsPercentage,
		Description:  at.Description,
	}

	var created wireAllowanceType
	if err := r.client.Post(ctx, "/allowance-types/", payload, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *httpRemote) Update(ctx context.Context, id int, req UpdateAllowanceTypeRequest) error {
	payload := wireAllowanceType{
		IsPercentage: req.IsPercentage,
	}
	if req.Name != nil {
		payload.Name = *req.Name
	}
	if req.Description != nil {
		payload.Description = *req.Description
	}

	return r.client.Patch(ctx, fmt.Sprintf("/allowance-types/%d/", id), payload, nil)
}

func (r *httpRemote) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/allowance-types/%d/", id))
}
