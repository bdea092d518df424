package model

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"customer", RoleCustomer, true},
		{"CUSTOMER", RoleCustomer, true},
		{"  Driver ", RoleDriver, true},
		{"admin", RoleAdmin, true},
		{"", DefaultRole, false},
		{"owner", DefaultRole, false},
		{"superuser", DefaultRole, false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseRole(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseRideStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want RideStatus
		ok   bool
	}{
		{"requested", RideRequested, true},
		{"ACCEPTED", RideAccepted, true},
		{" completed ", RideCompleted, true},
		{"cancelled", RideCancelled, true},
		{"", "", false},
		{"teleported", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRideStatus(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseRideStatus(%q) ok = %v; want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseRideStatus(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
