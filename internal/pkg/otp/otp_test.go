package otp

import "testing"

func TestNumericGenerate_ZeroPadding(t *testing.T) {
	cases := []struct {
		name string
		n    int
		want string
	}{
		{name: "lowest value keeps all zeros", n: 0, want: "000000"},
		{name: "short value is left padded", n: 123, want: "000123"},
		{name: "highest value", n: 999999, want: "999999"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &Numeric{intN: func(int) int { return tc.n }}

			got := g.Generate()

			if got != tc.want {
				t.Errorf("Generate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNumericGenerate_Shape(t *testing.T) {
	g := NewNumeric()

	for range 100 {
		code := g.Generate()

		if len(code) != Digits {
			t.Fatalf("Generate() length = %d, want %d", len(code), Digits)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("Generate() = %q, contains non-digit %q", code, r)
			}
		}
	}
}
