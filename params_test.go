package bezier

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default parameters are invalid: %s", err)
	}

	valid := []Params{
		{T: -1, Flatness: 0.1},
		{T: 2, Flatness: 100},
		{T: 0, Flatness: math.SmallestNonzeroFloat64},
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("%+v: unexpected error %s", p, err)
		}
	}

	invalid := []Params{
		{T: math.NaN(), Flatness: 1},
		{T: math.Inf(-1), Flatness: 1},
		{T: 0.5, Flatness: 0},
		{T: 0.5, Flatness: -0.5},
		{T: 0.5, Flatness: math.NaN()},
		{T: 0.5, Flatness: math.Inf(1)},
	}
	for _, p := range invalid {
		if err := p.Validate(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%+v: got error %v, want %v", p, err, ErrInvalidParameter)
		}
	}
}

func TestParamsWith(t *testing.T) {
	p := DefaultParams()
	q := p.WithT(0.25).WithFlatness(2)
	diff(t, Params{T: 0.25, Flatness: 2}, q)
	diff(t, DefaultParams(), p)
}

func TestLoadParams(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Params
		err  bool
	}{
		{"empty", "", DefaultParams(), false},
		{"both", "t: 0.25\nflatness: 0.1\n", Params{T: 0.25, Flatness: 0.1}, false},
		{"only t", "t: 0.75\n", Params{T: 0.75, Flatness: DefaultFlatness}, false},
		{"bad flatness", "flatness: -1\n", Params{}, true},
		{"unknown field", "degree: 3\n", Params{}, true},
		{"malformed", "t: [\n", Params{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadParams(strings.NewReader(tt.in))
			if tt.err {
				if err == nil {
					t.Fatalf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got)
		})
	}
}
