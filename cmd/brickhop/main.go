package main

import (
	"flag"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/brickhop/ecs"
	"github.com/plus3/brickhop/ecs/debugui"
	debugui_ebiten "github.com/plus3/brickhop/ecs/debugui/ebiten"
	"github.com/plus3/brickhop/sim"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	tickDelta = 1.0 / 60.0
)

// Game implements ebiten.Game: it writes the input snapshot, steps the
// simulation once per frame, and renders the world state.
type Game struct {
	world      *sim.World
	levelWidth float64

	camX  float64
	clock float64

	banner      string
	bannerTimer float64

	// Set only with -debug.
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	statsWindow  *debugui.StatsWindow
}

func main() {
	debug := flag.Bool("debug", false, "show the imgui simulation stats overlay")
	flag.Parse()

	var backend *ebitenbackend.EbitenBackend
	var extras []func(*ecs.ComponentRegistry)
	if *debug {
		backend = ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("brickhop", screenWidth, screenHeight)
		imgui.CurrentIO().SetIniFilename("")
		extras = append(extras, debugui.RegisterComponents)
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("brickhop")
	}

	world := sim.NewWorld(sim.BuiltinLevel(), extras...)

	game := &Game{
		world:      world,
		levelWidth: levelWidth(world),
	}

	if *debug {
		ecs.NewSingleton[debugui_ebiten.ImguiBackend](world.Storage, debugui_ebiten.ImguiBackend{
			EbitenBackend: backend,
		})
		game.imguiBackend = ecs.NewSingleton[debugui_ebiten.ImguiBackend](world.Storage)
		ecs.NewSingleton[debugui.ImguiInputState](world.Storage)
		game.statsWindow = debugui.NewStatsWindow(world.Storage, world.Scheduler)
		game.statsWindow.Spawn(world.Storage)
		debugui.NewEntityBrowser(world.Storage).Spawn(world.Storage)
		world.Scheduler.Register(&debugui.ImguiSystem{})
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func levelWidth(world *sim.World) float64 {
	width := float64(screenWidth)
	for i := range world.Platforms().Platforms {
		if right := world.Platforms().Platforms[i].Bounds.Right(); right > width {
			width = right
		}
	}
	return width
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		g.imguiBackend.Get().BeginFrame()
	}

	g.readInput()
	g.clock += tickDelta
	g.world.Step(tickDelta)
	g.consumeEvents()
	g.followPlayer()

	if g.bannerTimer > 0 {
		g.bannerTimer -= tickDelta
		if g.bannerTimer <= 0 {
			g.banner = ""
		}
	}

	if g.statsWindow != nil {
		g.statsWindow.RecordFrame(tickDelta)
	}
	if g.imguiBackend != nil {
		g.imguiBackend.Get().EndFrame()
	}
	return nil
}

func (g *Game) readInput() {
	in := g.world.Input()
	in.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)
	in.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)
	in.DuckHeld = ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	in.FirePressed = inpututil.IsKeyJustPressed(ebiten.KeyX)
	in.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// consumeEvents drains the frame's simulation events into HUD feedback.
// A real audio collaborator would hang off the same queue.
func (g *Game) consumeEvents() {
	for _, ev := range g.world.Events().Drain() {
		switch ev.Kind {
		case sim.EventPowerupCollected:
			g.showBanner(ev.Powerup.String())
		case sim.EventPlayerDamaged:
			g.showBanner("ouch!")
		case sim.EventPlayerDied:
			g.showBanner("player down")
		case sim.EventLevelCompleted:
			g.showBanner("level complete")
		case sim.EventGameOver:
			g.showBanner("game over")
		}
	}
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTimer = 2.0
}

func (g *Game) followPlayer() {
	body, _, ok := g.world.Player()
	if !ok {
		return
	}
	g.camX = body.Center().X - screenWidth/2
	if g.camX < 0 {
		g.camX = 0
	}
	if max := g.levelWidth - screenWidth; g.camX > max {
		g.camX = max
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	}
	return screenWidth, screenHeight
}
