package domain

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"Admin", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"  ADMIN  ", RoleAdmin, true},
		{"civil_engineer", RoleCivilEngineer, true},
		{"Civil Engineer", RoleCivilEngineer, true},
		{"project_site", RoleSiteManager, true},
		{"Site Manager", RoleSiteManager, true},
		{"Client/Buyer", RoleClient, true},
		{"client", RoleClient, true},
		{"intruder", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeRole(tc.in)
		if ok != tc.ok {
			t.Fatalf("NormalizeRole(%q): ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRolesEqual(t *testing.T) {
	if !RolesEqual("project_site", "Site Manager") {
		t.Fatalf("expected internal key to match its label")
	}
	if !RolesEqual("ENGINEER", "engineer") {
		t.Fatalf("unknown roles should still compare case-insensitively")
	}
	if RolesEqual("Builder", "Civil Engineer") {
		t.Fatalf("distinct roles must not match")
	}
	if RolesEqual("Builder", "engineer") {
		t.Fatalf("known role must not match an unknown one")
	}
}
