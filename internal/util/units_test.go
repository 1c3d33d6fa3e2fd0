package util

import "testing"

func TestConvert(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		from   Unit
		to     Unit
		want   float64
	}{
		{name: "g to mg", amount: 1.5, from: Gram, to: Milligram, want: 1500},
		{name: "mg to g", amount: 250, from: Milligram, to: Gram, want: 0.25},
		{name: "mg to ug", amount: 2, from: Milligram, to: Microgram, want: 2000},
		{name: "ug to mg", amount: 400, from: Microgram, to: Milligram, want: 0.4},
		{name: "notmass to mg", amount: 3, from: NotMass, to: Milligram, want: 3000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(tc.amount, tc.from, tc.to)
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	for _, u := range []Unit{NotMass, Gram, Milligram, Microgram} {
		if got := Convert(0.1234567, u, u); got != 0.1234567 {
			t.Fatalf("unit %v: got %v", u, got)
		}
	}
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		input string
		want  Unit
		ok    bool
	}{
		{input: "g", want: Gram, ok: true},
		{input: "G", want: Gram, ok: true},
		{input: "mg", want: Milligram, ok: true},
		{input: "MG", want: Milligram, ok: true},
		{input: "ug", want: Microgram, ok: true},
		{input: "µg", want: Microgram, ok: true},
		{input: "mcg", want: Microgram, ok: true},
		{input: " mg ", want: Milligram, ok: true},
		{input: "kcal", want: NotMass, ok: false},
		{input: "IU", want: NotMass, ok: false},
		{input: "", want: NotMass, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseUnit(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("ParseUnit(%q) = %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}
