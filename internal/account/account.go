// Package account defines the admin account model.
package account

// Role of an admin account.
type Role string

const (
	RoleMasterAdmin Role = "MASTER_ADMIN"
	RoleAdmin       Role = "ADMIN"
	RoleMember      Role = "MEMBER"
)

// User is one back-office account. Passwords are stored and compared
// in plaintext; this mirrors the persisted format of existing
// deployments and the backup token round-trips it verbatim.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// IsMasterAdmin reports whether u is the protected root account kind.
func (u User) IsMasterAdmin() bool {
	return u.Role == RoleMasterAdmin
}

// DefaultUsers returns the seed account set: a single master admin.
func DefaultUsers() []User {
	return []User{
		{
			ID:       "root-1",
			Email:    "ucu.suratman.mpd@gmail.com",
			Name:     "Ucu Suratman (Master)",
			Password: "admin123",
			Role:     RoleMasterAdmin,
		},
	}
}
