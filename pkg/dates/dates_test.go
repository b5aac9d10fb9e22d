package dates

import "testing"

func TestNormalizeValidDates(t *testing.T) {
	cases := []string{
		"2021-01-01",
		"2020-02-29", // leap day
		"1991-06-25",
		"2040-12-31",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			got, err := Normalize(input)
			if err != nil {
				t.Fatalf("Normalize(%q) returned error: %v", input, err)
			}
			if got != input {
				t.Errorf("Normalize(%q) = %q, want input unchanged", input, got)
			}
		})
	}
}

func TestNormalizeInvalidDates(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"wrong shape", "15.6.2020"},
		{"impossible day", "2021-02-30"},
		{"non-leap february", "2021-02-29"},
		{"month overflow", "2021-13-01"},
		{"garbage", "abc"},
		{"partial", "2021-02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(tc.input); err == nil {
				t.Errorf("Normalize(%q) succeeded, want error", tc.input)
			}
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		got, err := Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", input, err)
		}
		if got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestExtractRepealDate(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"repeal phrase with dotted date",
			"Zakon preneha veljati 15.6.2020 na podlagi ZXY.",
			"2020-06-15",
		},
		{
			"repeal phrase with spaced date",
			"Predpis je razveljavljen dne 1. 1. 2023.",
			"2023-01-01",
		},
		{
			"embedded ISO date",
			"Velja do 2019-03-31 po prehodni določbi.",
			"2019-03-31",
		},
		{
			"first match wins",
			"preneha veljati 5.5.2015, nato 2020-01-01",
			"2015-05-05",
		},
		{"no date", "Zakon ureja gospodarske družbe.", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractRepealDate(tc.input); got != tc.expected {
				t.Errorf("ExtractRepealDate(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestMonthNumber(t *testing.T) {
	cases := []struct {
		name     string
		expected int
	}{
		{"januar", 1},
		{"januarja", 1}, // declined form, prefix match
		{"februarja", 2},
		{"marec", 3},
		{"marca", 3},
		{"maj", 5},
		{"maja", 5},
		{"avgusta", 8},
		{"decembra", 12},
		{"DECEMBER", 12},
		{"xyz", 0},
		{"ma", 0}, // too short for a prefix
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthNumber(tc.name); got != tc.expected {
				t.Errorf("MonthNumber(%q) = %d, want %d", tc.name, got, tc.expected)
			}
		})
	}
}
