package types

// Role is a permission level in a strict total order. Higher ranked
// roles satisfy every requirement a lower ranked role satisfies.
type Role string

const (
	RolePublic     Role = "public"
	RoleResearcher Role = "researcher"
	RoleCurator    Role = "curator"
	RoleArchivist  Role = "archivist"
	RoleSuperAdmin Role = "super_admin"
)

var roleRanks = map[Role]int{
	RolePublic:     0,
	RoleResearcher: 1,
	RoleCurator:    2,
	RoleArchivist:  3,
	RoleSuperAdmin: 4,
}

// Rank maps a role onto its position in the total order. Unknown roles
// rank below public so a corrupt session never gains access.
func (r Role) Rank() int {
	rank, ok := roleRanks[r]
	if !ok {
		return -1
	}

	return rank
}

func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether r satisfies a requirement of `required`.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

func (r Role) String() string {
	return string(r)
}
