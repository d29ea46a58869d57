package services

import "testing"

func TestCodeGeneratorRange(t *testing.T) {
	g := NewCodeGenerator()
	for i := 0; i < 200; i++ {
		code := g.Code()
		if len(code) != 6 {
			t.Fatalf("code %q: length %d, want 6", code, len(code))
		}
		if code[0] == '0' {
			t.Fatalf("code %q starts with zero, want 100000..999999", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
	}
}
