// Command lit-sweep measures how the lit-start chance shapes generated boards.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	prng "lights-out/pkg/core"
	"lights-out/pkg/lightsout"
)

var log = logrus.New()

type scenarioResult struct {
	chance    float64
	boards    int
	totalLit  int
	maxLit    int
	startWon  int
	cellCount int
}

func (r scenarioResult) meanLitFraction() float64 {
	if r.boards == 0 || r.cellCount == 0 {
		return 0
	}
	return float64(r.totalLit) / float64(r.boards*r.cellCount)
}

func (r scenarioResult) startWonRate() float64 {
	if r.boards == 0 {
		return 0
	}
	return float64(r.startWon) / float64(r.boards)
}

func main() {
	rows := flag.Int("rows", lightsout.DefaultRows, "board rows")
	cols := flag.Int("cols", lightsout.DefaultCols, "board columns")
	boards := flag.Int("boards", 2000, "boards generated per chance value")
	minChance := flag.Float64("min", 0, "lowest lit chance")
	maxChance := flag.Float64("max", 1, "highest lit chance")
	step := flag.Float64("step", 0.05, "chance increment")
	seed := flag.Int64("seed", 1337, "base seed for deterministic sweeps")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	chances, err := chanceSteps(*minChance, *maxChance, *step)
	if err != nil {
		log.WithError(err).Fatal("invalid sweep range")
	}
	if *workers < 1 {
		*workers = 1
	}

	p := message.NewPrinter(language.English)
	p.Printf("Sweeping %d chance values on %dx%d boards (%d boards each, %d workers)\n",
		len(chances), *rows, *cols, *boards, *workers)

	type job struct {
		index  int
		chance float64
	}
	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := runScenario(*rows, *cols, j.chance, *boards, *seed+int64(j.index))
				if err != nil {
					log.WithError(err).WithField("chance", j.chance).Error("scenario failed")
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, c := range chances {
			jobs <- job{index: i, chance: c}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].chance < all[j].chance })

	p.Printf("\n%8s %10s %10s %8s %12s\n", "chance", "lit frac", "deviation", "max lit", "start won")
	for _, res := range all {
		frac := res.meanLitFraction()
		p.Printf("%8.2f %10.4f %10.4f %8d %11.2f%%\n",
			res.chance, frac, math.Abs(frac-res.chance), res.maxLit, 100*res.startWonRate())
	}
	p.Printf("\nGenerated %d boards in %s\n", len(all)*(*boards), time.Since(start).Round(time.Millisecond))

	if len(all) != len(chances) {
		os.Exit(1)
	}
}

// minStep matches the rounding applied to each chance value.
const minStep = 1e-6

// chanceSteps lists the chance values from lo to hi inclusive.
func chanceSteps(lo, hi, step float64) ([]float64, error) {
	if !(step >= minStep) || hi < lo {
		return nil, fmt.Errorf("%w: range %v..%v step %v", lightsout.ErrInvalidProbability, lo, hi, step)
	}
	for _, v := range []float64{lo, hi} {
		if err := (lightsout.Config{Rows: 1, Cols: 1, Chance: v}).Validate(); err != nil {
			return nil, err
		}
	}
	n := int(math.Floor((hi-lo)/step+1e-9)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, math.Round((lo+float64(i)*step)*1e6)/1e6)
	}
	return out, nil
}

// runScenario deals n boards at the given chance from one seeded generator.
func runScenario(rows, cols int, chance float64, n int, seed int64) (scenarioResult, error) {
	res := scenarioResult{chance: chance, cellCount: rows * cols}
	board, err := lightsout.NewWithRand(rows, cols, chance, prng.NewRNG(seed).Source())
	if err != nil {
		return res, err
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := board.Reset(); err != nil {
				return res, err
			}
		}
		lit := board.LitCount()
		res.boards++
		res.totalLit += lit
		if lit > res.maxLit {
			res.maxLit = lit
		}
		if board.IsWon() {
			res.startWon++
		}
	}
	return res, nil
}
