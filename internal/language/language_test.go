package language

import (
	"testing"

	xlang "golang.org/x/text/language"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"", "Unknown"},
		{"  ", "Unknown"},
		{"en", "English"},
		{"pt", "Portuguese"},
		{"pt-BR", "Brazilian Portuguese"},
		{"not a code!", "NOT A CODE!"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := DisplayName(tt.code); got != tt.want {
				t.Fatalf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label(xlang.Und); got != "Unknown" {
		t.Fatalf("Label(und) = %q", got)
	}
	if got := Label(xlang.MustParse("pt-BR")); got != "Brazilian Portuguese (pt-BR)" {
		t.Fatalf("Label(pt-BR) = %q", got)
	}
}
