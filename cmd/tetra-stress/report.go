package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetra/game"
)

type gameResult struct {
	Seed     uint64
	Ticks    int
	Score    int
	Lines    int
	Level    int
	Finished bool
	Stats    game.SessionStats
}

type Report struct {
	// Configuration
	Games    int
	Seed     uint64
	MaxTicks int

	// Results
	TotalTime  time.Duration
	TotalTicks int64
	Finished   int
	Abandoned  int
	TotalScore int64
	BestScore  int
	TotalLines int64
	Tetrises   int
	Pieces     [game.NumPieceTypes]int

	TickTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Record folds one game's outcome into the aggregate counters.
func (r *Report) Record(res gameResult) {
	r.TotalTicks += int64(res.Ticks)
	if res.Finished {
		r.Finished++
	} else {
		r.Abandoned++
	}
	r.TotalScore += int64(res.Score)
	if res.Score > r.BestScore {
		r.BestScore = res.Score
	}
	r.TotalLines += int64(res.Lines)
	r.Tetrises += res.Stats.Tetrises
	for t, n := range res.Stats.PiecesSpawned {
		r.Pieces[t] += n
	}
}

func (r *Report) AvgScore() int64 {
	if r.Games == 0 {
		return 0
	}
	return r.TotalScore / int64(r.Games)
}

// PieceRows renders the spawn distribution with one row per piece type.
func (r *Report) PieceRows() []string {
	var total int
	for _, n := range r.Pieces {
		total += n
	}
	rows := make([]string, 0, game.NumPieceTypes)
	for t := game.PieceType(0); t < game.NumPieceTypes; t++ {
		share := 0.0
		if total > 0 {
			share = 100 * float64(r.Pieces[t]) / float64(total)
		}
		rows = append(rows, fmt.Sprintf("%s: %d (%.2f%%)", t, r.Pieces[t], share))
	}
	return rows
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Session Stress Test Report

## Test Configuration
- **Games:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Tick Cap Per Game:** {{.MaxTicks}}

## Game Results
- **Finished:** {{.Finished}}
- **Abandoned (tick cap):** {{.Abandoned}}
- **Total Ticks:** {{.TotalTicks}}
- **Avg Score:** {{.AvgScore}}
- **Best Score:** {{.BestScore}}
- **Total Lines:** {{.TotalLines}}
- **Tetrises:** {{.Tetrises}}
- **Piece Distribution:**
{{- range .PieceRows}}
  - {{.}}
{{- end}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
