package duckgo

import (
	"errors"
	"testing"
)

func TestExtractVQD(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"double quoted", `window.load({vqd="4-12345678"});`, "4-12345678"},
		{"ampersand delimited", `/d.js?q=test&vqd=4-987654&kl=wt-wt`, "4-987654"},
		{"single quoted", `init({vqd='4-abcdef'})`, "4-abcdef"},
		{"double quoted wins over ampersand", `vqd="4-first"&vqd=4-second&`, "4-first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractVQD([]byte(tt.body), "test")
			if err != nil {
				t.Fatalf("extractVQD: %v", err)
			}
			if got != tt.want {
				t.Errorf("extractVQD = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractVQDMissing(t *testing.T) {
	_, err := extractVQD([]byte("<html>nothing here</html>"), "rare ducks")
	if !errors.Is(err, ErrNoVQD) {
		t.Fatalf("err = %v, want ErrNoVQD", err)
	}

	var vqdErr *VQDError
	if !errors.As(err, &vqdErr) {
		t.Fatalf("err %T is not *VQDError", err)
	}
	if vqdErr.Keywords != "rare ducks" {
		t.Errorf("Keywords = %q, want %q", vqdErr.Keywords, "rare ducks")
	}
}
