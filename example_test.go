package sbrqmf_test

import (
	"fmt"
	"math"

	sbrqmf "github.com/llehouerou/go-sbrqmf"
)

func Example() {
	cfg := sbrqmf.DefaultConfig()

	ana, err := sbrqmf.NewAnalysisBank(2, cfg)
	if err != nil {
		fmt.Printf("Analysis error: %v\n", err)
		return
	}
	syn, err := sbrqmf.NewSynthesisBank(2, cfg)
	if err != nil {
		fmt.Printf("Synthesis error: %v\n", err)
		return
	}

	// 16 slots of stereo core-band PCM.
	core := make([]sbrqmf.Sample, 16*sbrqmf.SlotSamples*2)

	frames := ana.Process(nil, core, sbrqmf.AnalysisBands)
	pcm := syn.Process(nil, frames)

	fmt.Printf("Frames: %d\n", len(frames))
	fmt.Printf("Samples: %d\n", len(pcm))

	// Output:
	// Frames: 32
	// Samples: 2048
}

func ExampleSynthesisBank_Process() {
	cfg := sbrqmf.DefaultConfig()
	cfg.Bands = 32

	ana, _ := sbrqmf.NewAnalysisBank(1, cfg)
	syn, _ := sbrqmf.NewSynthesisBank(1, cfg)

	// A unit impulse comes back out after the filter bank delay.
	input := make([]sbrqmf.Sample, 20*sbrqmf.SlotSamples)
	input[0] = sbrqmf.SampleFromFloat(1)

	output := syn.Process(nil, ana.Process(nil, input, sbrqmf.AnalysisBands))

	peak := 0
	for i, v := range output {
		if math.Abs(sbrqmf.SampleToFloat(v)) > math.Abs(sbrqmf.SampleToFloat(output[peak])) {
			peak = i
		}
	}
	fmt.Printf("Peak at %d: %.2f\n", peak, sbrqmf.SampleToFloat(output[peak]))

	// Output:
	// Peak at 289: 1.00
}

func ExampleConfig_Validate() {
	cfg := sbrqmf.DefaultConfig()
	cfg.Bands = 48

	fmt.Println(cfg.Validate())

	// Output:
	// Invalid number of synthesis bands
}
