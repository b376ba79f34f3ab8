package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vburojevic/logpar/internal/output"
)

type benchResult struct {
	File         string
	Lines        int
	SerialSecs   float64
	ParallelSecs float64
	Speedup      float64
}

// column indexes into output.CSVHeader
const (
	colFile = iota
	colLines
	colSerial
	colParallel
	colSpeedup
)

func parseBenchCSV(r io.Reader) (map[string]benchResult, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty benchmark file")
	}
	if strings.Join(records[0], ",") != strings.Join(output.CSVHeader, ",") {
		return nil, fmt.Errorf("unexpected header %v", records[0])
	}

	results := make(map[string]benchResult)
	for i, rec := range records[1:] {
		if len(rec) < len(output.CSVHeader) {
			return nil, fmt.Errorf("row %d: want %d columns, got %d", i+2, len(output.CSVHeader), len(rec))
		}
		lines, err := strconv.Atoi(rec[colLines])
		if err != nil {
			return nil, fmt.Errorf("row %d: lines: %w", i+2, err)
		}
		var nums [3]float64
		for j, col := range []int{colSerial, colParallel, colSpeedup} {
			v, err := strconv.ParseFloat(rec[col], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", i+2, output.CSVHeader[col], err)
			}
			nums[j] = v
		}
		// runs from different machines or directories compare by file name
		name := filepath.Base(rec[colFile])
		results[name] = benchResult{
			File:         name,
			Lines:        lines,
			SerialSecs:   nums[0],
			ParallelSecs: nums[1],
			Speedup:      nums[2],
		}
	}
	return results, nil
}

func parseBenchFile(path string) (map[string]benchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseBenchCSV(f)
}

type regression struct {
	Name   string
	Metric string
	Base   float64
	Head   float64
	Ratio  float64
}

func ratio(base, head float64) float64 {
	if base == 0 {
		if head == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return head / base
}

// compare reports every file whose parallel time grew by more than
// maxTimeRatio or whose speedup shrank by more than maxSpeedupDrop.
func compare(base, head map[string]benchResult, maxTimeRatio, maxSpeedupDrop float64) ([]regression, int) {
	var regressions []regression
	compared := 0
	for name, b := range base {
		h, ok := head[name]
		if !ok || h.Lines != b.Lines {
			continue
		}
		compared++

		if r := ratio(b.ParallelSecs, h.ParallelSecs); r > maxTimeRatio {
			regressions = append(regressions, regression{Name: name, Metric: "parallel", Base: b.ParallelSecs, Head: h.ParallelSecs, Ratio: r})
		}
		if b.Speedup > 0 {
			if r := ratio(h.Speedup, b.Speedup); r > maxSpeedupDrop {
				regressions = append(regressions, regression{Name: name, Metric: "speedup", Base: b.Speedup, Head: h.Speedup, Ratio: r})
			}
		}
	}

	sort.Slice(regressions, func(i, j int) bool {
		if regressions[i].Ratio == regressions[j].Ratio {
			if regressions[i].Name == regressions[j].Name {
				return regressions[i].Metric < regressions[j].Metric
			}
			return regressions[i].Name < regressions[j].Name
		}
		return regressions[i].Ratio > regressions[j].Ratio
	})
	return regressions, compared
}

func main() {
	var basePath string
	var headPath string
	var maxTimeRatio float64
	var maxSpeedupDrop float64

	flag.StringVar(&basePath, "base", "", "Path to base `logpar bench --csv` output")
	flag.StringVar(&headPath, "head", "", "Path to head `logpar bench --csv` output")
	flag.Float64Var(&maxTimeRatio, "max-time-ratio", 2.0, "Fail if parallel time regresses by more than this ratio")
	flag.Float64Var(&maxSpeedupDrop, "max-speedup-drop", 1.5, "Fail if speedup shrinks by more than this ratio")
	flag.Parse()

	if basePath == "" || headPath == "" {
		_, _ = fmt.Fprintln(os.Stderr, "usage: benchguard --base <file> --head <file>")
		os.Exit(2)
	}

	base, err := parseBenchFile(basePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to parse base: %v\n", err)
		os.Exit(2)
	}
	head, err := parseBenchFile(headPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to parse head: %v\n", err)
		os.Exit(2)
	}

	regressions, compared := compare(base, head, maxTimeRatio, maxSpeedupDrop)
	if compared == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "no overlapping files found between base and head results")
		os.Exit(2)
	}

	if len(regressions) == 0 {
		fmt.Printf("benchguard: ok (%d files compared)\n", compared)
		return
	}

	fmt.Printf("benchguard: found %d regressions (%d files compared)\n", len(regressions), compared)
	for _, r := range regressions {
		switch r.Metric {
		case "parallel":
			fmt.Printf("- %s %s: %.6fs -> %.6fs (x%.2f)\n", r.Name, r.Metric, r.Base, r.Head, r.Ratio)
		default:
			fmt.Printf("- %s %s: %.2f -> %.2f (x%.2f)\n", r.Name, r.Metric, r.Base, r.Head, r.Ratio)
		}
	}

	os.Exit(1)
}
