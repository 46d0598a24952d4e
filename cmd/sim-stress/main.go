package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/brickhop/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	tickRate := flag.Int("tick-rate", 60, "Simulation ticks per second.")
	width := flag.Int("width", 8, "The number of level segments to generate.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting simulation stress test...")

	log.Printf("Generating a %d-segment level...\n", *width)
	world := sim.NewWorld(syntheticLevel(*width))
	tickDelta := 1.0 / float64(*tickRate)

	report := &Report{
		Duration:       *duration,
		TickRate:       *tickRate,
		Segments:       *width,
		Entities:       world.Storage.EntityCount(),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s at %d ticks/s...\n", *duration, *tickRate)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			driveInput(world, totalTicks)

			updateStart := time.Now()
			world.Step(tickDelta)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.UpdateTime.Finalize()
	report.SystemStats = world.Scheduler.GetStats()
	report.FinalRun = *world.Run()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// syntheticLevel tiles a fixed segment pattern sideways: two ground runs
// split by a pit, a question-block row, coins, and an enemy patrol per
// segment. More segments means more live enemy and powerup entities.
func syntheticLevel(segments int) sim.Level {
	const span = 3200.0
	if segments < 1 {
		segments = 1
	}

	level := sim.Level{
		Name:        fmt.Sprintf("stress-%d", segments),
		PlayerStart: sim.Vec2{X: 96, Y: 64},
	}

	for s := 0; s < segments; s++ {
		off := float64(s) * span
		level.Platforms = append(level.Platforms,
			sim.PlatformRecord{Rect: sim.Rect{X: off, Y: 0, W: 1280, H: 64}, Kind: sim.PlatformGround},
			sim.PlatformRecord{Rect: sim.Rect{X: off + 1408, Y: 0, W: 1792, H: 64}, Kind: sim.PlatformGround},
			sim.PlatformRecord{Rect: sim.Rect{X: off + 512, Y: 192, W: 256, H: 64}, Kind: sim.PlatformGravel},
			sim.PlatformRecord{Rect: sim.Rect{X: off + 704, Y: 320, W: 64, H: 64}, Kind: sim.PlatformQuestion, Contains: "mushroom"},
			sim.PlatformRecord{Rect: sim.Rect{X: off + 544, Y: 288, W: 32, H: 32}, Kind: sim.PlatformCoin},
			sim.PlatformRecord{Rect: sim.Rect{X: off + 608, Y: 288, W: 32, H: 32}, Kind: sim.PlatformCoin},
		)
		level.Enemies = append(level.Enemies,
			sim.SpawnRecord{X: off + 900, Y: 64, Kind: "goomba"},
			sim.SpawnRecord{X: off + 1700, Y: 64, Kind: "goomba"},
			sim.SpawnRecord{X: off + 2100, Y: 64, Kind: "koopa"},
		)
		level.Powerups = append(level.Powerups,
			sim.SpawnRecord{X: off + 2600, Y: 64, Kind: "chicken"},
		)
	}

	goal := sim.Rect{X: float64(segments)*span - 160, Y: 64, W: 16, H: 320}
	level.Goal = &goal
	return level
}

// driveInput writes a scripted input pattern so the run exercises the full
// system set: walk right, jump every second, throw a fireball every three.
func driveInput(world *sim.World, tick int64) {
	in := world.Input()
	in.Right = true
	in.Left = false
	in.JumpPressed = tick%60 == 0
	in.JumpHeld = tick%60 < 15
	in.DuckHeld = false
	in.FirePressed = tick%180 == 0
	in.PausePressed = false

	// Events are normally drained by a front end each frame.
	world.Events().Drain()
}
