package varistat_test

import (
	"fmt"
	"log"

	"github.com/arloliu/varistat"
	"github.com/arloliu/varistat/regression"
	"github.com/arloliu/varistat/stats"
)

// ExampleCalculateStats demonstrates control limits and capability.
func ExampleCalculateStats() {
	usl, lsl := 13.0, 7.0
	grades := []stats.GradeBand{
		{Max: 9.5, Label: "light", Color: "blue"},
		{Max: 10.5, Label: "nominal", Color: "green"},
		{Max: 11.5, Label: "heavy", Color: "red"},
	}

	res, err := varistat.CalculateStats([]float64{9, 10, 11}, &usl, &lsl, grades)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("mean=%.2f sd=%.2f UCL=%.2f LCL=%.2f\n", res.Mean, res.StdDev, res.UCL, res.LCL)
	fmt.Printf("Cp=%.2f Cpk=%.2f out=%.1f%%\n", *res.Cp, *res.Cpk, res.OutOfSpecPercentage)
	for _, g := range res.GradeCounts {
		fmt.Printf("%s: %d\n", g.Label, g.Count)
	}

	// Output:
	// mean=10.00 sd=1.00 UCL=13.00 LCL=7.00
	// Cp=1.00 Cpk=1.00 out=0.0%
	// light: 1
	// nominal: 1
	// heavy: 1
}

// ExampleNelsonRule2Violations demonstrates run detection around a reference mean.
func ExampleNelsonRule2Violations() {
	sample := []float64{-1, -2, -3, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0}

	v := varistat.NelsonRule2Violations(sample, 0)
	fmt.Println(v.Indices())

	// Output:
	// [3 4 5 6 7 8 9 10 11]
}

// ExampleSuggestTermRemoval demonstrates the multicollinearity override.
func ExampleSuggestTermRemoval() {
	vifTemp, vifHum := 15.2, 1.5
	coefs := []regression.CoefficientResult{
		{Term: "Temp", PValue: 0.001, IsSignificant: true, VIF: &vifTemp, TermInfo: regression.Continuous("Temp")},
		{Term: "Humidity", PValue: 0.72, VIF: &vifHum, TermInfo: regression.Continuous("Humidity")},
	}

	s := varistat.SuggestTermRemoval(coefs)
	fmt.Println(s.Reason, s.Term)

	// Output:
	// high_vif Temp
}
