package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetra/game"
)

// tickStep is the synthetic clock step; roughly one 60 FPS frame.
const tickStep = 16 * time.Millisecond

func main() {
	games := flag.Int("games", 100, "The number of full games to play.")
	seed := flag.Uint64("seed", 1, "The base seed; game n uses seed+n.")
	maxTicks := flag.Int("max-ticks", 500000, "The tick cap per game before it is abandoned.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting session stress test...")

	report := &Report{
		Games:    *games,
		Seed:     *seed,
		MaxTicks: *maxTicks,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Playing %d games...\n", *games)
	startTime := time.Now()

	for g := 0; g < *games; g++ {
		gameSeed := *seed + uint64(g)
		result := playGame(gameSeed, *maxTicks, &report.TickTime)
		report.Record(result)
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// playGame drives one seeded session with a random-intent bot on a
// synthetic clock until it tops out or hits the tick cap.
func playGame(seed uint64, maxTicks int, tickTime *Stats) gameResult {
	session := game.NewSeededSession(seed, nil, nil)
	session.Start()

	bot := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	now := time.Unix(0, 0)

	ticks := 0
	for session.State() == game.StatePlaying && ticks < maxTicks {
		switch bot.IntN(10) {
		case 0:
			session.MoveLeft()
		case 1:
			session.MoveRight()
		case 2:
			session.RotateClockwise()
		case 3:
			session.SoftDrop()
		case 4:
			session.HardDrop()
		}

		now = now.Add(tickStep)
		tickStart := time.Now()
		session.Tick(now)
		tickTime.Samples = append(tickTime.Samples, time.Since(tickStart))
		ticks++

		// Drain the event queue so it cannot grow across a long game.
		session.PollEvents()
	}

	return gameResult{
		Seed:     seed,
		Ticks:    ticks,
		Score:    session.Score(),
		Lines:    session.Lines(),
		Level:    session.Level(),
		Finished: session.State() == game.StateGameOver,
		Stats:    session.Stats(),
	}
}
