package employee

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go-payroll/internal/remote"
)

// The persistence service models an employee as a user account plus an HR
// profile, keyed by a gender-style M/S code that this system repurposes
// for marital status. The translation is confined to this file.
const defaultPassword = "defaultpassword123"

type wireUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type wireEmployee struct {
	ID             int      `json:"id"`
	User           wireUser `json:"user"`
	DepartmentName string   `json:"department_name"`
	Position       string   `json:"position"`
	DateJoined     string   `json:"date_joined"`
	Salary         string   `json:"salary"`
	Gender         string   `json:"gender"`
}

type wireCreateEmployee struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	EmployeeID string `json:"employee_id"`
	Department int    `json:"department"`
	Position   string `json:"position"`
	DateJoined string `json:"date_joined"`
	Salary     string `json:"salary"`
	Gender     string `json:"gender"`
}

type wireUpdateEmployee struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Position   string `json:"position,omitempty"`
	DateJoined string `json:"date_joined,omitempty"`
	Salary     string `json:"salary,omitempty"`
	Gender     string `json:"gender,omitempty"`
}

func maritalToGender(maritalStatus string) string {
	if maritalStatus == "married" {
		return "M"
	}
	return "S"
}

func genderToMarital(gender string) string {
	if gender == "M" {
		return "married"
	}
	return "single"
}

//go:generate mockgen -source=employee_remote.go -destination=mock/employee_remote_mock.go -package=mock
type Remote interface {
	List(ctx context.Context) ([]Employee, error)
	// Create returns the remote-assigned id, 0 when the response omits one.
	Create(ctx context.Context, e Employee, departmentID int) (int, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int) error
}

type httpRemote struct {
	client *remote.Client
}

func NewRemote(client *remote.Client) Remote {
	return &httpRemote{client: client}
}

func (r *httpRemote) List(ctx context.Context) ([]Employee, error) {
	var wire []wireEmployee
	if err := r.client.Get(ctx, "/employees/", &wire); err != nil {
		return nil, err
	}

	employees := make([]Employee, len(wire))
	for i, w := range wire {
		dateHired, _ := time.Parse(dateLayout, w.DateJoined)
		employees[i] = Employee{
			ID:            w.ID,
			FirstName:     w.User.FirstName,
			LastName:      w.User.LastName,
			Email:         w.User.Email,
			Position:      w.Position,
			Department:    w.DepartmentName,
			DateHired:     dateHired,
			Salary:        parseSalary(w.Salary),
			MaritalStatus: genderToMarital(w.Gender),
		}
	}
	return employees, nil
}

func (r *httpRemote) Create(ctx context.Context, e Employee, departmentID int) (int, error) {
	payload := wireCreateEmployee{
		Username:   usernameFromEmail(e.Email),
		Password:   defaultPassword,
		Email:      e.Email,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		EmployeeID: fmt.Sprintf("EMP%04d", rand.Intn(10000)),
		Department: departmentID,
		Position:   e.Position,
		DateJoined: e.DateHired.Format(dateLayout),
		Salary:     formatSalary(e.Salary),
		Gender:     maritalToGender(e.MaritalStatus),
	}

	var created wireEmployee
	if err := r.client.Post(ctx, "/employees/", payload, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *httpRemote) Update(ctx context.Context, id int, req UpdateEmployeeRequest) error {
	var payload wireUpdateEmployee
	if req.FirstName != nil {
		payload.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		payload.LastName = *req.LastName
	}
	if req.Position != nil {
		payload.Position = *req.Position
	}
	if req.DateHired != nil {
		payload.DateJoined = *req.DateHired
	}
	if req.Salary != nil {
		payload.Salary = formatSalary(*req.Salary)
	}
	if req.MaritalStatus != nil {
		payload.Gender = maritalToGender(*req.MaritalStatus)
	}

	return r.client.Patch(ctx, fmt.Sprintf("/employees/%d/", id), payload, nil)
}

func (r *httpRemote) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/employees/%d/", id))
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
