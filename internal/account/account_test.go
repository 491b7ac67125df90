package account

import "testing"

func TestDefaultUsers(t *testing.T) {
	users := DefaultUsers()
	if len(users) != 1 {
		t.Fatalf("expected single seed account, got %d", len(users))
	}
	root := users[0]
	if root.ID != "root-1" || !root.IsMasterAdmin() {
		t.Fatalf("seed account must be the master admin: %+v", root)
	}
	if root.Email == "" || root.Password == "" {
		t.Fatalf("seed credentials incomplete: %+v", root)
	}

	// fresh slice per call
	users[0].Name = "changed"
	if DefaultUsers()[0].Name == "changed" {
		t.Fatalf("DefaultUsers must not share state between calls")
	}
}

func TestIsMasterAdmin(t *testing.T) {
	if (User{Role: RoleAdmin}).IsMasterAdmin() {
		t.Fatalf("ADMIN must not count as master")
	}
	if (User{Role: RoleMember}).IsMasterAdmin() {
		t.Fatalf("MEMBER must not count as master")
	}
	if !(User{Role: RoleMasterAdmin}).IsMasterAdmin() {
		t.Fatalf("MASTER_ADMIN must count as master")
	}
}
