// Package netlist parses junction deck files. A deck describes one junction,
// the voltage sweep to run, the solver options and an optional light source:
//
//	* GaAs-like junction at 320 K, parameters known at 297 K
//	junction t=320 j01=1u j02=0 n1=1 n2=2 rs=0 rsh=100G eg=1.42 tref=297
//	source blackbody t=5800 power=1k
//	.iv 0 0.6 121
//	.options maxiter=200 reltol=1e-6
//
// Values accept SPICE-style SI suffixes (1k, 10u, 2meg).
package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"pvjunction/pkg/solver"
	"pvjunction/pkg/spectrum"
	"pvjunction/pkg/twodiode"
)

type Sweep struct {
	Start  float64
	Stop   float64
	Points int
}

type Deck struct {
	Junction    twodiode.Params
	HasJunction bool

	// Reference-condition data; when present the junction parameters are
	// understood as measured at RefTemp and extrapolated to Junction.T.
	BandGap      float64
	RefTemp      float64
	HasReference bool

	Sweep    Sweep
	HasSweep bool
	Options  *solver.Options
	Source   spectrum.LightSource
}

// BuildJunction assembles the junction described by the deck, applying the
// reference-temperature extrapolation when band gap data is present.
func (d *Deck) BuildJunction() *twodiode.Junction {
	if d.HasReference {
		ref := d.Junction.WithTemperature(d.RefTemp)
		return twodiode.FromReference(d.BandGap, d.Junction.T, ref, nil, d.Options)
	}
	return twodiode.New(d.Junction, nil, d.Options)
}

func Parse(content string) (*Deck, error) {
	deck := &Deck{Junction: twodiode.DefaultParams()}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch {
		case strings.EqualFold(fields[0], "junction"):
			err = parseJunction(deck, fields[1:])
		case strings.EqualFold(fields[0], "source"):
			err = parseSource(deck, fields[1:])
		case strings.HasPrefix(fields[0], "."):
			err = parseDotOperator(deck, fields)
		default:
			err = fmt.Errorf("unknown element: %s", fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
	}

	if !deck.HasJunction {
		return nil, fmt.Errorf("deck has no junction line")
	}
	return deck, nil
}

func parseJunction(deck *Deck, fields []string) error {
	if deck.HasJunction {
		return fmt.Errorf("duplicate junction line")
	}

	p := deck.Junction
	var bandGap, refTemp float64
	hasEg, hasTref := false, false

	for _, field := range fields {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("malformed parameter %q", field)
		}
		v, err := ParseValue(val)
		if err != nil {
			return fmt.Errorf("parameter %s: %v", key, err)
		}

		switch strings.ToLower(key) {
		case "t":
			p.T = v
		case "j01":
			p.J01 = v
		case "j02":
			p.J02 = v
		case "n1":
			p.N1 = v
		case "n2":
			p.N2 = v
		case "rs":
			p.Rs = v
		case "rsh":
			p.Rsh = v
		case "jsc":
			p = p.WithJsc(v)
		case "eg":
			bandGap = v
			hasEg = true
		case "tref":
			refTemp = v
			hasTref = true
		default:
			return fmt.Errorf("unknown junction parameter %q", key)
		}
	}

	if hasEg != hasTref {
		return fmt.Errorf("eg and tref must be given together")
	}
	if hasEg {
		deck.BandGap = bandGap
		deck.RefTemp = refTemp
		deck.HasReference = true
	}

	deck.Junction = p
	deck.HasJunction = true
	return nil
}

func parseSource(deck *Deck, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("source line without a type")
	}

	switch strings.ToLower(fields[0]) {
	case "blackbody":
		t, power := 5800.0, 1000.0
		for _, field := range fields[1:] {
			key, val, ok := strings.Cut(field, "=")
			if !ok {
				return fmt.Errorf("malformed source parameter %q", field)
			}
			v, err := ParseValue(val)
			if err != nil {
				return fmt.Errorf("source parameter %s: %v", key, err)
			}
			switch strings.ToLower(key) {
			case "t":
				t = v
			case "power":
				power = v
			default:
				return fmt.Errorf("unknown black body parameter %q", key)
			}
		}
		if t <= 0 {
			return fmt.Errorf("black body temperature must be positive, got %g", t)
		}
		deck.Source = spectrum.NewBlackBody(t, power)
		return nil

	default:
		return fmt.Errorf("unknown source type %q", fields[0])
	}
}

func parseDotOperator(deck *Deck, fields []string) error {
	switch strings.ToLower(fields[0]) {
	case ".iv":
		if len(fields) != 4 {
			return fmt.Errorf(".iv needs start, stop and number of points")
		}
		start, err := ParseValue(fields[1])
		if err != nil {
			return fmt.Errorf(".iv start: %v", err)
		}
		stop, err := ParseValue(fields[2])
		if err != nil {
			return fmt.Errorf(".iv stop: %v", err)
		}
		points, err := strconv.Atoi(fields[3])
		if err != nil || points < 2 {
			return fmt.Errorf(".iv needs at least 2 points, got %q", fields[3])
		}
		deck.Sweep = Sweep{Start: start, Stop: stop, Points: points}
		deck.HasSweep = true
		return nil

	case ".options":
		opts := deck.Options
		if opts == nil {
			opts = solver.DefaultOptions()
		}
		for _, field := range fields[1:] {
			key, val, ok := strings.Cut(field, "=")
			if !ok {
				return fmt.Errorf("malformed option %q", field)
			}
			switch strings.ToLower(key) {
			case "maxiter":
				n, err := strconv.Atoi(val)
				if err != nil || n < 1 {
					return fmt.Errorf("maxiter must be a positive integer, got %q", val)
				}
				opts.MaxIter = n
			case "abstol":
				v, err := ParseValue(val)
				if err != nil {
					return fmt.Errorf("abstol: %v", err)
				}
				opts.AbsTol = v
			case "reltol":
				v, err := ParseValue(val)
				if err != nil {
					return fmt.Errorf("reltol: %v", err)
				}
				opts.RelTol = v
			case "fdstep":
				v, err := ParseValue(val)
				if err != nil {
					return fmt.Errorf("fdstep: %v", err)
				}
				opts.FDStep = v
			default:
				return fmt.Errorf("unknown option %q", key)
			}
		}
		deck.Options = opts
		return nil

	default:
		return fmt.Errorf("unknown directive %s", fields[0])
	}
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

var valueRe = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?$`)

// ParseValue parses a number with an optional SPICE-style SI suffix.
func ParseValue(val string) (float64, error) {
	matches := valueRe.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}
