// coral-sweep explores the growth parameter space headlessly: a worker
// pool runs every parameter set across several seeds and reports which
// combinations grow the tallest, densest structures.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"coral-ca/internal/sims/coral"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

type paramSet struct {
	temperature float64
	branchRate  float64
	deathRate   float64
	crowdingMax int
	flowWeight  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("temp=%.2f branch=%.3f death=%.3f crowd=%d flow=%.2f",
		p.temperature, p.branchRate, p.deathRate, p.crowdingMax, p.flowWeight)
}

type sweepRow struct {
	Temperature float64 `csv:"temperature"`
	BranchRate  float64 `csv:"branch_rate"`
	DeathRate   float64 `csv:"death_rate"`
	CrowdingMax int     `csv:"crowding_max"`
	FlowWeight  float64 `csv:"flow_weight"`
	MeanCells   float64 `csv:"mean_cells"`
	StdCells    float64 `csv:"std_cells"`
	MeanReach   float64 `csv:"mean_reach"`
	StdReach    float64 `csv:"std_reach"`
	MeanDensity float64 `csv:"mean_density"`
	MeanTipPeak float64 `csv:"mean_tip_peak"`
}

func main() {
	steps := flag.Int("steps", 8000, "step budget per run")
	size := flag.Int("size", 192, "grid side length")
	seeds := flag.Int("seeds", 5, "seeds per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	csvPath := flag.String("csv", "", "optional path for the aggregated results CSV")
	flag.Parse()

	baseCfg := coral.DefaultConfig()
	baseCfg.GridSize = *size
	baseCfg.Params.NSteps = *steps

	temperatureOptions := []float64{1.0, 2.5, 5.0}
	branchOptions := []float64{0.06, 0.12, 0.2}
	deathOptions := []float64{0, 0.01, 0.03}
	crowdingOptions := []int{2, 3}
	flowOptions := []float64{0, 0.35}

	var sets []paramSet
	for _, temp := range temperatureOptions {
		for _, branch := range branchOptions {
			for _, death := range deathOptions {
				for _, crowd := range crowdingOptions {
					for _, flow := range flowOptions {
						sets = append(sets, paramSet{
							temperature: temp,
							branchRate:  branch,
							deathRate:   death,
							crowdingMax: crowd,
							flowWeight:  flow,
						})
					}
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets x %d seeds (%d workers, %d steps)\n",
		len(sets), *seeds, *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan sweepRow)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSet(baseCfg, params, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepRow
	for row := range results {
		all = append(all, row)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MeanReach > all[j].MeanReach })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 by mean reach (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		r := all[i]
		fmt.Printf("%2d) reach=%.1f±%.1f cells=%.0f±%.0f density=%.3f tips=%.1f temp=%.2f branch=%.3f death=%.3f crowd=%d flow=%.2f\n",
			i+1, r.MeanReach, r.StdReach, r.MeanCells, r.StdCells, r.MeanDensity, r.MeanTipPeak,
			r.Temperature, r.BranchRate, r.DeathRate, r.CrowdingMax, r.FlowWeight)
	}

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("creating %s: %v", *csvPath, err)
		}
		defer f.Close()
		if err := gocsv.MarshalFile(&all, f); err != nil {
			log.Fatalf("writing %s: %v", *csvPath, err)
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(all), *csvPath)
	}
}

// runSet measures one parameter set across several seeds and folds the
// per-seed telemetry into means and standard deviations.
func runSet(base coral.Config, params paramSet, seeds int) sweepRow {
	cfg := base
	cfg.Params.Temperature = params.temperature
	cfg.Params.BranchRate = params.branchRate
	cfg.Params.DeathRate = params.deathRate
	cfg.Params.CrowdingMax = params.crowdingMax
	cfg.Params.FlowWeight = params.flowWeight

	cells := make([]float64, 0, seeds)
	reach := make([]float64, 0, seeds)
	density := make([]float64, 0, seeds)
	tipPeaks := make([]float64, 0, seeds)

	for s := 0; s < seeds; s++ {
		cfg.Seed = base.Seed + int64(s)
		res, err := coral.RunMeasured(cfg)
		if err != nil {
			log.Fatalf("invalid sweep configuration %s: %v", params, err)
		}
		cells = append(cells, float64(res.HistoryLen))
		reach = append(reach, res.Reach)
		density = append(density, res.Density)
		tipPeaks = append(tipPeaks, float64(res.TipPeak))
	}

	return sweepRow{
		Temperature: params.temperature,
		BranchRate:  params.branchRate,
		DeathRate:   params.deathRate,
		CrowdingMax: params.crowdingMax,
		FlowWeight:  params.flowWeight,
		MeanCells:   stat.Mean(cells, nil),
		StdCells:    stat.StdDev(cells, nil),
		MeanReach:   stat.Mean(reach, nil),
		StdReach:    stat.StdDev(reach, nil),
		MeanDensity: stat.Mean(density, nil),
		MeanTipPeak: stat.Mean(tipPeaks, nil),
	}
}
