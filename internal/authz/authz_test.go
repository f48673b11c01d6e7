package authz

import "testing"

func TestReadFilter(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		name   string
		access Access
		want   *int64
	}{
		{"no token", Anonymous(), nil},
		{"invalid token", Invalid(), nil},
		{"valid token", User(42), ptr(42)},
	}

	for _, tc := range cases {
		got := p.ReadFilter(tc.access)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("%s: filter = %v; want %v", tc.name, got, tc.want)
		}
		if got != nil && *got != *tc.want {
			t.Fatalf("%s: filter = %d; want %d", tc.name, *got, *tc.want)
		}
	}
}

func TestCreateOwner(t *testing.T) {
	p := DefaultPolicy()

	if owner := p.CreateOwner(Anonymous()); owner != nil {
		t.Fatalf("anonymous create should leave the task unowned, got %d", *owner)
	}
	if owner := p.CreateOwner(Invalid()); owner != nil {
		t.Fatalf("invalid-token create should leave the task unowned, got %d", *owner)
	}
	owner := p.CreateOwner(User(7))
	if owner == nil || *owner != 7 {
		t.Fatalf("authenticated create should stamp the caller, got %v", owner)
	}
}

func TestWriteScope(t *testing.T) {
	cases := []struct {
		name           string
		policy         Policy
		access         Access
		wantNil        bool
		wantOwner      int64
		includeUnowned bool
	}{
		{"no token is unrestricted", DefaultPolicy(), Anonymous(), true, 0, false},
		{"invalid token is unrestricted", DefaultPolicy(), Invalid(), true, 0, false},
		{"valid token with legacy amnesty", DefaultPolicy(), User(9), false, 9, true},
		{"valid token, legacy locked down", Policy{LegacyWritable: false}, User(9), false, 9, false},
		{"legacy lockdown does not restrict anonymous", Policy{LegacyWritable: false}, Anonymous(), true, 0, false},
	}

	for _, tc := range cases {
		scope := tc.policy.WriteScope(tc.access)
		if tc.wantNil {
			if scope != nil {
				t.Fatalf("%s: scope = %+v; want nil", tc.name, scope)
			}
			continue
		}
		if scope == nil {
			t.Fatalf("%s: scope = nil; want owner %d", tc.name, tc.wantOwner)
		}
		if scope.OwnerID != tc.wantOwner || scope.IncludeUnowned != tc.includeUnowned {
			t.Fatalf("%s: scope = %+v; want owner %d includeUnowned %v",
				tc.name, scope, tc.wantOwner, tc.includeUnowned)
		}
	}
}

func ptr(v int64) *int64 { return &v }
