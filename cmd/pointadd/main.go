package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"smallcurve/curve"
)

// sumReport is the -json output schema.
type sumReport struct {
	A        string `json:"a"`
	B        string `json:"b"`
	P1       string `json:"p1"`
	P2       string `json:"p2"`
	Sum      string `json:"sum"`
	Infinity bool   `json:"infinity"`
}

func main() {
	paramsPath := flag.String("params", "", "curve parameter JSON file (default: built-in demo instance)")
	asJSON := flag.Bool("json", false, "print the result as JSON instead of text")
	flag.Parse()

	par := curve.DefaultParams()
	if *paramsPath != "" {
		loaded, err := curve.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("load params: %v", err)
		}
		par = *loaded
	}

	sum, err := curve.Add(par.P, par.Q, par.A)
	if err != nil {
		log.Fatalf("add points: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(sumReport{
			A:        par.A.String(),
			B:        par.B.String(),
			P1:       par.P.String(),
			P2:       par.Q.String(),
			Sum:      sum.String(),
			Infinity: sum.IsInfinity(),
		}, "", "  ")
		if err != nil {
			log.Fatalf("marshal report: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("P1: %s\n", par.P)
	fmt.Printf("P2: %s\n", par.Q)
	if sum.IsInfinity() {
		fmt.Println("P1 + P2 = Point at Infinity")
	} else {
		fmt.Printf("P1 + P2: %s\n", sum)
	}
}
