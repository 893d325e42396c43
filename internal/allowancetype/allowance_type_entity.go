package allowancetype

// AllowanceType definitions are referenced by allowances through
// AllowanceTypeID. Deleting a type does not cascade; existing allowances
// keep their snapshotted name and flag.
type AllowanceType struct {
	ID           int
	Name         string
	IsPercentage bool
	Description  string
}
