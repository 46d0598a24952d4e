package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/brickhop/ecs"
)

const frameHistorySize = 120

// StatsWindow renders a window with storage contents, per-system scheduler
// timings, and a frame-time graph.
type StatsWindow struct {
	storage      *ecs.Storage
	scheduler    *ecs.Scheduler
	frameHistory []float32
	frameIndex   int
}

// NewStatsWindow creates the stats window for a storage/scheduler pair.
func NewStatsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) *StatsWindow {
	return &StatsWindow{
		storage:      storage,
		scheduler:    scheduler,
		frameHistory: make([]float32, frameHistorySize),
	}
}

// Spawn registers the window as an ImguiItem entity.
func (w *StatsWindow) Spawn(storage *ecs.Storage) {
	storage.Spawn(ImguiItem{Render: w.Render})
}

// Render draws the window. deltaTime samples are fed from the render loop
// via RecordFrame.
func (w *StatsWindow) Render() {
	if !imgui.BeginV("Simulation Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))

	var avgFrameTime float32
	for _, ft := range w.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(len(w.frameHistory))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	if imgui.TreeNodeStr("Component Stores") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ComponentStores", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, store := range stats.Stores {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(store.ComponentType)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", store.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStats", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range w.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// RecordFrame adds a frame duration sample in seconds.
func (w *StatsWindow) RecordFrame(deltaTime float64) {
	w.frameHistory[w.frameIndex] = float32(deltaTime * 1000.0)
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)
}
