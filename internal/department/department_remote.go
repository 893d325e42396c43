package department

import (
	"context"

	"go-payroll/internal/remote"
)

type wireDepartment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

//go:generate mockgen -source=department_remote.go -destination=mock/department_remote_mock.go -package=mock
type Remote interface {
	List(ctx context.Context) ([]Department, error)
}

type httpRemote struct {
	client *remote.Client
}

func NewRemote(client *remote.Client) Remote {
	return &httpRemote{client: client}
}

func (r *httpRemote) List(ctx context.Context) ([]Department, error) {
	var wire []wireDepartment
	if err := r.client.Get(ctx, "/departments/", &wire); err != nil {
		return nil, err
	}

	depts := make([]Department, len(wire))
	for i, w := range wire {
		depts[i] = Department{ID: w.ID, Name: w.Name}
	}
	return depts, nil
}
