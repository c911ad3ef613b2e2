package models

import "testing"

func TestMemberRoleValid(t *testing.T) {
	cases := []struct {
		role  MemberRole
		valid bool
	}{
		{MemberRoleAdmin, true},
		{MemberRoleMember, true},
		{MemberRole("Admin"), false},
		{MemberRole("owner"), false},
		{MemberRole(""), false},
	}
	for _, tc := range cases {
		if got := tc.role.Valid(); got != tc.valid {
			t.Errorf("MemberRole(%q).Valid() = %v, want %v", tc.role, got, tc.valid)
		}
	}
}
