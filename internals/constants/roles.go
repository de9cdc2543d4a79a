package constants

// Role user pada sistem absensi magang.
const (
	RoleIntern     = "intern"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

var ValidRoles = []string{RoleIntern, RoleSupervisor, RoleAdmin}

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
