package identifier

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		id   string
		want Category
	}{
		{"1_Name", Name},
		{"1_1_3_Name", Name},
		{"1_1_Desc_0", Description},
		{"1_1_Desc_1", Other},
		{"1_1_Qs_0_Q", Question},
		{"1_1_Qs_12_Q", Question},
		{"1_1_Qs_x_Q", Other},
		{"1_1_Qs_0_Q_Words", Other},
		{"1_1_Abbr", Abbreviation},
		{"1_1_Name_Abbr", Abbreviation},
		{"1_1_Abbr_Name", Name},
		{"", Other},
		{"Name", Other},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Classify(tt.id); got != tt.want {
				t.Fatalf("Classify(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestClassifySuffixChangeIsDeterministic(t *testing.T) {
	prefixes := []string{"1", "8_3_2", "x"}
	suffixes := map[string]Category{
		"_Name":    Name,
		"_Desc_0":  Description,
		"_Qs_4_Q":  Question,
		"_Abbr":    Abbreviation,
		"_Comment": Other,
	}
	for _, prefix := range prefixes {
		for suffix, want := range suffixes {
			id := prefix + suffix
			for i := 0; i < 2; i++ {
				if got := Classify(id); got != want {
					t.Fatalf("Classify(%q) = %v, want %v", id, got, want)
				}
			}
		}
	}
}

func TestCompanion(t *testing.T) {
	got, ok := Companion("1_2_Name", Name, Abbreviation)
	if !ok || got != "1_2_Abbr" {
		t.Fatalf("Companion = %q, %v", got, ok)
	}
	if _, ok := Companion("1_2_Desc_0", Name, Abbreviation); ok {
		t.Fatal("expected mismatch for wrong source category")
	}
	if _, ok := Companion("1_2_Name", Name, Question); ok {
		t.Fatal("expected false for question target")
	}
}
