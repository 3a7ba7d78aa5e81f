package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"pvjunction/pkg/junction"
	"pvjunction/pkg/netlist"
	"pvjunction/pkg/util"
)

var plotFile = flag.String("plot", "", "write the IV curve to a PNG file")

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Println("Usage: pvjunction [options] <deck file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error reading deck file: %v", err)
	}

	deck, err := netlist.Parse(string(content))
	if err != nil {
		log.Fatalf("Error parsing deck: %v", err)
	}
	if !deck.HasSweep {
		log.Fatalf("Deck has no .iv line")
	}

	voltage := make([]float64, deck.Sweep.Points)
	floats.Span(voltage, deck.Sweep.Start, deck.Sweep.Stop)

	result, err := deck.BuildJunction().SolveIV(voltage, nil, deck.Source)
	if err != nil {
		log.Fatalf("Error solving IV curve: %v", err)
	}

	printResult(result)

	if *plotFile != "" {
		err = writePlot(result, *plotFile)
		if err != nil {
			log.Fatalf("Error writing plot: %v", err)
		}
		fmt.Printf("\nPlot written to %s\n", *plotFile)
	}
}

func printResult(result *junction.IVResult) {
	fmt.Printf("\nIV Curve (%d points):\n", len(result.Voltage))
	fmt.Println("Voltage       Current")
	fmt.Println("------------------------")
	for i := range result.Voltage {
		fmt.Printf("%-13s %s\n",
			util.FormatValueFactor(result.Voltage[i], "V"),
			util.FormatValueFactor(result.Current[i], "A"))
	}

	if len(result.Params) == 0 {
		return
	}

	fmt.Println("\nCurve Parameters:")
	order := []struct{ key, unit string }{
		{"Isc", "A"},
		{"Voc", "V"},
		{"Vmpp", "V"},
		{"Impp", "A"},
		{"Pmpp", "W"},
	}
	for _, e := range order {
		if v, ok := result.Params[e.key]; ok {
			fmt.Printf("%-4s = %s\n", e.key, util.FormatValueFactor(v, e.unit))
		}
	}
	if v, ok := result.Params["FF"]; ok {
		fmt.Printf("FF   = %s\n", util.FormatPercent(v))
	}
	if v, ok := result.Params["eta"]; ok {
		fmt.Printf("eta  = %s\n", util.FormatPercent(v))
	}
}

func writePlot(result *junction.IVResult, path string) error {
	pts := make(plotter.XYs, len(result.Voltage))
	for i := range pts {
		pts[i].X = result.Voltage[i]
		pts[i].Y = result.Current[i]
	}

	p := plot.New()
	p.Title.Text = "Two-diode IV curve"
	p.X.Label.Text = "Voltage (V)"
	p.Y.Label.Text = "Current (A)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
