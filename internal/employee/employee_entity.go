package employee

import "time"

type Employee struct {
	ID            int
	FirstName     string
	LastName      string
	Email         string
	Position      string
	Department    string // department name; resolved to a remote id on create
	DateHired     time.Time
	Salary        float64 // monthly gross
	MaritalStatus string  // single | married
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
