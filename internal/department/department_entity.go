package department

// Department is owned by the remote service; this layer only reads it to
// resolve human-readable names to remote ids.
type Department struct {
	ID   int
	Name string
}
