package gopagenav

import "testing"

func Test_Role_Valid(t *testing.T) {
	tests := []struct {
		name  string
		in    Role
		valid bool
	}{
		{"first", RoleFirst, true},
		{"previous", RolePrevious, true},
		{"page", RolePage, true},
		{"next", RoleNext, true},
		{"last", RoleLast, true},
		{"gap", RoleGap, true},
		{"empty is invalid", Role(""), false},
		{"unknown is invalid", Role("middle"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Valid(); got != tt.valid {
				t.Errorf("%s: Valid=%v want %v", tt.name, got, tt.valid)
			}
		})
	}
}
