package domain

import "testing"

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "ada.lovelace"},
		{"ada", "lovelace", "ada.lovelace"},
		{"ADA", "LOVELACE", "ada.lovelace"},
		{"Grace", "Hopper", "grace.hopper"},
		{"J", "D", "j.d"},
	}
	for _, tc := range cases {
		if got := DeriveUsername(tc.first, tc.last); got != tc.want {
			t.Errorf("DeriveUsername(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("expected admin and user to be valid roles")
	}
	if ValidRole("superuser") {
		t.Fatalf("unexpected role accepted")
	}
	if ValidRole("") {
		t.Fatalf("empty role accepted")
	}
}
