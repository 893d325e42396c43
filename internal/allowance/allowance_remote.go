package allowance

import (
	"context"
	"fmt"

	"go-payroll/internal/remote"
)

// wireAllowance is the snake_case shape of the persistence service. The
// remote keeps foreign keys only; the type-name snapshot exists solely in
// the local collection.
type wireAllowance struct {
	ID            int      `json:"id,omitempty"`
	Employee      int      `json:"employee,omitempty"`
	AllowanceType int      `json:"allowance_type,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	IsPercentage  *bool    `json:"is_percentage,omitempty"`
}

//go:generate mockgen -source=allowance_remote.go -destination=mock/allowance_remote_mock.go -package=mock
type Remote interface {
	List(ctx context.Context) ([]Allowance, error)
	// Create returns the remote-assigned id, 0 when the response omits one.
	Create(ctx context.Context, a Allowance) (int, error)
	Update(ctx context.Context, id int, req UpdateAllowanceRequest) error
	Delete(ctx context.Context, id int) error
}

type httpRemote struct {
	client *remote.Client
}

func NewRemote(client *remote.Client) Remote {
	return &httpRemote{client: client}
}

func (r *httpRemote) List(ctx context.Context) ([]Allowance, error) {
	var wire []wireAllowance
	if err := r.client.Get(ctx, "/allowances/", &wire); err != nil {
		return nil, err
	}

	allowances := make([]Allowance, len(wire))
	for i, w := range wire {
		amount := 0.0
		if w.Amount != nil {
			amount = *w.Amount
		}
		isPercentage := false
		if w.IsPercentage != nil {
			isPercentage = *w.IsPercentage
		}
		allowances[i] = Allowance{
			ID:              w.ID,
			EmployeeID:      w.Employee,
			AllowanceTypeID: w.AllowanceType,
			Amount:          amount,
			IsPercentage:    isPercentage,
		}
	}
	return allowances, nil
}

func (r *httpRemote) Create(ctx context.Context, a Allowance) (int, error) {
	payload := wireAllowance{
		Employee:      a.EmployeeID,
		AllowanceType: a.AllowanceTypeID,
		Amount:        &a.Amount,
		IsPercentage:  &a.IsPercentage,
	}

	var created wireAllowance
	if err := r.client.Post(ctx, "/allowances/", payload, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *httpRemote) Update(ctx context.Context, id int, req UpdateAllowanceRequest) error {
	payload := wireAllowance{
		Amount: req.Amount,
	}
	return r.client.Patch(ctx, fmt.Sprintf("/allowances/%d/", id), payload, nil)
}

func (r *httpRemote) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/allowances/%d/", id))
}
