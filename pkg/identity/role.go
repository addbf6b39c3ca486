package identity

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform lower -json -output role.gen.go

// Role is the closed set of roles the system grants privileges to.
// Credential roles outside the set still authenticate; they just never
// match a Role, so adding a privileged role means adding a constant here
// and regenerating role.gen.go.
type Role int

const (
	RoleAdmin Role = iota
)
