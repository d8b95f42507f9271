package domain

type Role string

const (
	// User can create blogs and manage their own.
	RoleUser Role = "user"
	// Admin can block users and delete any blog.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}

// RoleRank: bigger => higher privilege
func RoleRank(r string) int {
	switch r {
	case string(RoleUser):
		return 1
	case string(RoleAdmin):
		return 2
	default:
		return 0
	}
}
