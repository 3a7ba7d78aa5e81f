package netlist

import (
	"math"
	"strings"
	"testing"

	"pvjunction/pkg/spectrum"
)

const sampleDeck = `
* GaAs-like junction, parameters known at 297 K
junction t=320 j01=1u j02=1n rs=10m rsh=100G jsc=0.03 eg=1.42 tref=297
source blackbody t=5800 power=1k
.iv 0 0.6 121
.options maxiter=200 reltol=1e-7
`

func TestParseDeck(t *testing.T) {
	deck, err := Parse(sampleDeck)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p := deck.Junction
	if p.T != 320 || p.J01 != 1e-6 || p.J02 != 1e-9 {
		t.Errorf("junction parameters wrong: %+v", p)
	}
	if math.Abs(p.Rs-0.01) > 1e-15 || p.Rsh != 100e9 {
		t.Errorf("resistances wrong: rs=%g rsh=%g", p.Rs, p.Rsh)
	}
	if !p.HasJsc || p.Jsc != 0.03 {
		t.Errorf("jsc wrong: %+v", p)
	}

	if !deck.HasReference || deck.BandGap != 1.42 || deck.RefTemp != 297 {
		t.Errorf("reference data wrong: %+v", deck)
	}
	if !deck.HasSweep || deck.Sweep != (Sweep{Start: 0, Stop: 0.6, Points: 121}) {
		t.Errorf("sweep wrong: %+v", deck.Sweep)
	}

	if deck.Options == nil || deck.Options.MaxIter != 200 || deck.Options.RelTol != 1e-7 {
		t.Errorf("options wrong: %+v", deck.Options)
	}
	if deck.Options.AbsTol != 1e-12 {
		t.Errorf("untouched options must keep defaults, got abstol=%g", deck.Options.AbsTol)
	}

	bb, ok := deck.Source.(*spectrum.BlackBody)
	if !ok {
		t.Fatalf("expected black body source, got %T", deck.Source)
	}
	if bb.T != 5800 || bb.Power != 1000 {
		t.Errorf("source wrong: %+v", bb)
	}
}

func TestBuildJunctionAppliesReference(t *testing.T) {
	deck, err := Parse(sampleDeck)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	jn := deck.BuildJunction()
	if jn.Data.T != 320 {
		t.Errorf("expected target temperature 320, got %g", jn.Data.T)
	}
	if jn.Data.J01 <= 1e-6 {
		t.Errorf("j01 should be rescaled above its 297 K value, got %g", jn.Data.J01)
	}
	if jn.Meta["t_ref"] != 297 || jn.Meta["band_gap"] != 1.42 {
		t.Errorf("provenance metadata wrong: %v", jn.Meta)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, deck, want string
	}{
		{"no junction", ".iv 0 1 10\n", "no junction line"},
		{"unknown element", "resistor r1 0 1 100\n", "unknown element"},
		{"bad value", "junction t=abc\n", "invalid value"},
		{"eg without tref", "junction eg=1.42\n", "eg and tref"},
		{"bad sweep", "junction t=300\n.iv 0 1\n", ".iv needs"},
		{"bad option", "junction t=300\n.options frobs=1\n", "unknown option"},
		{"bad source", "junction t=300\nsource laser\n", "unknown source type"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.deck)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"1k", 1000},
		{"2meg", 2e6},
		{"10u", 1e-5},
		{"1.5e-3", 1.5e-3},
		{"-4.7n", -4.7e-9},
	}
	for _, c := range cases {
		got, err := ParseValue(c.in)
		if err != nil {
			t.Errorf("ParseValue(%q): %v", c.in, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-12*math.Abs(c.want) {
			t.Errorf("ParseValue(%q): expected %g, got %g", c.in, c.want, got)
		}
	}

	if _, err := ParseValue("abc"); err == nil {
		t.Error("expected error for non-numeric value")
	}
}
