package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/maseology/side"
)

func main() {

	gdefFP := flag.String("gd", "", "grid definition file (.gdef)")
	demFP := flag.String("dem", "", "elevation raster (.bil)")
	faccFP := flag.String("facc", "", "flow accumulation raster (.bil)")
	strmFP := flag.String("strm", "", "channel mask raster (.bil)")
	optFP := flag.String("o", "", "options yaml (optional)")
	outPrfx := flag.String("p", "", "output file prefix")
	chkPrfx := flag.String("chk", "", "diagnostic raster prefix (optional)")
	gobFP := flag.String("gob", "", "accumulation gob snapshot path (optional)")
	hexp := flag.Float64("hexp", 1., "MDInf dispersion exponent")
	unit := flag.String("unit", side.UnitCells, "output unit: cells, sca or tca")
	cathresh := flag.Float64("cathresh", 0., "channel initiation threshold")
	flag.Parse()

	if *gdefFP == "" || *demFP == "" || *faccFP == "" || *strmFP == "" {
		flag.Usage()
		log.Fatalf("gd, dem, facc and strm are required")
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load data
	dom := side.LoadDomain(*gdefFP, *demFP, *faccFP, *strmFP)
	tt.Print("Domain load complete\n")

	opts := side.DefaultOptions()
	if *optFP != "" {
		var err error
		if opts, err = side.LoadOptions(*optFP); err != nil {
			log.Fatalf("%v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) { // explicit flags override the yaml file
		switch f.Name {
		case "hexp":
			opts.HExp = *hexp
		case "unit":
			opts.Unit = *unit
		case "cathresh":
			opts.CaThresh = *cathresh
		}
	})
	if err := opts.Check(); err != nil {
		log.Fatalf("%v", err)
	}

	if *chkPrfx != "" {
		dom.Checkandprint(*chkPrfx)
	}

	// accumulate
	acc, err := dom.EvaluateConcurrent(context.Background(), opts)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tt.Print("Accumulation complete\n")

	// output
	if err := acc.SaveTo(dom.GD, *outPrfx); err != nil {
		log.Fatalf("%v", err)
	}
	acc.WriteStreamSummary(dom, *outPrfx+"side.streams.csv")
	if *gobFP != "" {
		if err := acc.SaveGob(*gobFP); err != nil {
			log.Fatalf("%v", err)
		}
	}
}
