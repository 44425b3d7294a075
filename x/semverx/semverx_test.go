package semverx

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.0.0-alpha.9")
	if err != nil {
		t.Fatalf("ParseVersion: %v", err)
	}
	if v.Major != 1 || v.Minor != 0 || v.Patch != 0 || v.Pre != "alpha.9" {
		t.Fatalf("got %+v", v)
	}
	if got := MustVersion("v0.8.1").String(); got != "0.8.1" {
		t.Fatalf("String() = %q", got)
	}
	for _, bad := range []string{"", "0.8", "1", "a.b.c", "1.2.3.4"} {
		if _, err := ParseVersion(bad); !errors.Is(err, ErrInvalidVersion) {
			t.Fatalf("ParseVersion(%q) err = %v, want ErrInvalidVersion", bad, err)
		}
	}
}

func TestCompareOrdersPrereleaseFirst(t *testing.T) {
	if Compare(MustVersion("1.0.0-alpha.9"), MustVersion("1.0.0")) >= 0 {
		t.Fatal("pre-release should sort before release")
	}
	if Compare(MustVersion("0.7.3"), MustVersion("0.7.10")) >= 0 {
		t.Fatal("numeric ordering broken")
	}
	if Compare(MustVersion("0.2.1"), MustVersion("0.2.1")) != 0 {
		t.Fatal("equal versions")
	}
}

func TestRequirementMatches(t *testing.T) {
	cases := []struct {
		req  string
		v    string
		want bool
	}{
		// caret (bare)
		{"0.7", "0.7.0", true},
		{"0.7", "0.7.3", true},
		{"0.7", "0.8.0", false},
		{"0.2.1", "0.2.0", false},
		{"0.2.1", "0.2.9", true},
		{"^1.2.3", "1.9.0", true},
		{"^1.2.3", "2.0.0", false},
		{"^0.0.3", "0.0.3", true},
		{"^0.0.3", "0.0.4", false},
		{"^0.0", "0.0.7", true},
		{"^0.0", "0.1.0", false},
		{"^0", "0.9.9", true},
		{"^0", "1.0.0", false},
		// tilde
		{"~0.3", "0.3.9", true},
		{"~0.3", "0.4.0", false},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{"~1", "1.9.0", true},
		// exact
		{"=1.2.3", "1.2.3", true},
		{"=1.2.3", "1.2.4", false},
		{"=1.2", "1.2.7", true},
		// comparison
		{">=0.7, <0.9", "0.8.5", true},
		{">=0.7, <0.9", "0.9.0", false},
		{">1.2", "1.2.9", false},
		{">1.2", "1.3.0", true},
		{"<=1.2", "1.2.9", true},
		{"<=1.2", "1.3.0", false},
		// wildcard
		{"*", "3.1.4", true},
		{"0.2.*", "0.2.5", true},
		{"0.2.*", "0.3.0", false},
		// pre-release gating
		{"1.0.0-alpha.9", "1.0.0-alpha.9", true},
		{"1.0.0-alpha.9", "1.0.0-alpha.10", true},
		{"1.0.0-alpha.9", "1.0.0", true},
		{"0.2", "0.2.5-rc.1", false},
		{"*", "1.0.0-alpha.1", false},
	}
	for _, tc := range cases {
		r, err := ParseRequirement(tc.req)
		if err != nil {
			t.Fatalf("ParseRequirement(%q): %v", tc.req, err)
		}
		if got := r.Matches(MustVersion(tc.v)); got != tc.want {
			t.Errorf("%q matches %q = %v, want %v", tc.req, tc.v, got, tc.want)
		}
	}
}

func TestParseRequirementRejects(t *testing.T) {
	for _, bad := range []string{"", ">=", "^a.b", "1.*.3", "0.2,", ">= *", "1.2-pre"} {
		if _, err := ParseRequirement(bad); !errors.Is(err, ErrInvalidRequirement) {
			t.Errorf("ParseRequirement(%q) err = %v, want ErrInvalidRequirement", bad, err)
		}
	}
}

func TestRequirementString(t *testing.T) {
	if got := MustRequirement(" ^0.8.0 ").String(); got != "^0.8.0" {
		t.Fatalf("String() = %q", got)
	}
	if Any.String() != "*" || !Any.Matches(MustVersion("9.9.9")) {
		t.Fatal("Any should match releases")
	}
}
