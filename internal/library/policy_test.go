package library

import (
	"testing"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		input string
		want  SortPolicy
		ok    bool
	}{
		{"root", PolicyRoot, true},
		{"date", PolicyDate, true},
		{"DATE", PolicyDate, true},
		{" root ", PolicyRoot, true},
		{"", PolicyRoot, true},
		{"alphabetical", PolicyRoot, false},
	}
	for _, tc := range cases {
		got, err := ParsePolicy(tc.input)
		if tc.ok && err != nil {
			t.Fatalf("ParsePolicy(%q): unexpected error %v", tc.input, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("ParsePolicy(%q): expected error", tc.input)
			}
			continue
		}
		if got != tc.want {
			t.Fatalf("ParsePolicy(%q): got %v want %v", tc.input, got, tc.want)
		}
	}
}

func TestPolicyString(t *testing.T) {
	if PolicyRoot.String() != "root" {
		t.Fatalf("PolicyRoot.String() = %q", PolicyRoot.String())
	}
	if PolicyDate.String() != "date" {
		t.Fatalf("PolicyDate.String() = %q", PolicyDate.String())
	}
}

func TestRootPolicyRelativePath(t *testing.T) {
	rel, err := PolicyRoot.relativePath("/some/deep/tree/IMG_1234.JPG")
	if err != nil {
		t.Fatal(err)
	}
	if rel != "IMG_1234.JPG" {
		t.Fatalf("root policy must flatten to the base name, got %q", rel)
	}
}
