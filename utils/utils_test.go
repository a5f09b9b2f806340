package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Logitech G Pro X Superlight": "logitech-g-pro-x-superlight",
		"Keychron K2 Pro":             "keychron-k2-pro",
		"  Spaces  Everywhere  ":      "spaces-everywhere",
		"100% Cotton!":                "100-cotton",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	if got := GenerateRandomString(10); len(got) != 10 {
		t.Fatalf("expected length 10, got %d", len(got))
	}
	if GenerateRandomString(10) == GenerateRandomString(10) {
		t.Fatal("two random strings should not collide")
	}
}
