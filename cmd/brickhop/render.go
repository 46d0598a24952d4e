package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/brickhop/sim"
)

var (
	colorSky      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}
	colorGround   = color.RGBA{R: 0x8B, G: 0x5A, B: 0x2B, A: 0xFF}
	colorGravel   = color.RGBA{R: 0xA9, G: 0xA9, B: 0xA9, A: 0xFF}
	colorQuestion = color.RGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF}
	colorUsed     = color.RGBA{R: 0x9E, G: 0x76, B: 0x3D, A: 0xFF}
	colorCoin     = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	colorGoal     = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

	colorGoomba = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}
	colorKoopa  = color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF}
	colorShell  = color.RGBA{R: 0x1C, G: 0x5E, B: 0x3A, A: 0xFF}

	colorMushroom = color.RGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF}
	colorFlower   = color.RGBA{R: 0xFF, G: 0x70, B: 0x43, A: 0xFF}
	colorStar     = color.RGBA{R: 0xFF, G: 0xEB, B: 0x3B, A: 0xFF}
	colorChicken  = color.RGBA{R: 0xFA, G: 0xFA, B: 0xD2, A: 0xFF}

	colorPlayerSmall = color.RGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF}
	colorPlayerBig   = color.RGBA{R: 0xC2, G: 0x18, B: 0x5B, A: 0xFF}
	colorPlayerFire  = color.RGBA{R: 0xFF, G: 0x8F, B: 0x00, A: 0xFF}
	colorFireball    = color.RGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	g.drawPlatforms(screen)
	g.drawGoal(screen)
	g.drawPowerups(screen)
	g.drawEnemies(screen)
	g.drawFireballs(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)

	if g.imguiBackend != nil {
		g.imguiBackend.Get().Draw(screen)
	}
}

// fillRect draws a world-space rect. The sim is Y-up with bottom-left
// anchored rects; the screen is Y-down.
func (g *Game) fillRect(screen *ebiten.Image, r sim.Rect, clr color.Color) {
	x := float32(r.X - g.camX)
	y := float32(screenHeight - (r.Y + r.H))
	vector.DrawFilledRect(screen, x, y, float32(r.W), float32(r.H), clr, false)
}

func (g *Game) drawPlatforms(screen *ebiten.Image) {
	for i := range g.world.Platforms().Platforms {
		p := &g.world.Platforms().Platforms[i]
		var clr color.Color
		switch p.Kind {
		case sim.PlatformGround:
			clr = colorGround
		case sim.PlatformGravel:
			clr = colorGravel
		case sim.PlatformQuestion:
			clr = colorQuestion
			if p.HasBeenHit {
				clr = colorUsed
			}
		case sim.PlatformCoin:
			clr = colorCoin
		}
		g.fillRect(screen, p.Bounds, clr)
	}
}

func (g *Game) drawGoal(screen *ebiten.Image) {
	if goal := g.world.Info().Goal; goal != nil {
		g.fillRect(screen, *goal, colorGoal)
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image) {
	g.world.EachEnemy(func(b *sim.Body, e *sim.Enemy) {
		clr := colorGoomba
		if e.Kind == sim.EnemyKoopa {
			clr = colorKoopa
			if e.Koopa == sim.KoopaShellIdle || e.Koopa == sim.KoopaShellMoving {
				clr = colorShell
			}
		}
		g.fillRect(screen, b.Bounds(), clr)
	})
}

func (g *Game) drawPowerups(screen *ebiten.Image) {
	g.world.EachPowerup(func(b *sim.Body, pw *sim.Powerup) {
		if !pw.Active {
			return
		}
		var clr color.Color
		switch pw.Kind {
		case sim.PowerupMushroom:
			clr = colorMushroom
		case sim.PowerupFireFlower:
			clr = colorFlower
		case sim.PowerupStar:
			clr = colorStar
		case sim.PowerupChicken:
			clr = colorChicken
		default:
			return
		}
		g.fillRect(screen, b.Bounds(), clr)
	})
}

func (g *Game) drawFireballs(screen *ebiten.Image) {
	g.world.EachFireball(func(b *sim.Body, f *sim.Fireball) {
		if f.Active {
			g.fillRect(screen, b.Bounds(), colorFireball)
		}
	})
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	body, state, ok := g.world.Player()
	if !ok {
		return
	}
	// Invincibility and power transitions flash at 10 Hz.
	if (state.Invincible || state.Transitioning) && int(g.clock*10)%2 == 0 {
		return
	}
	clr := colorPlayerSmall
	switch state.Power {
	case sim.PowerBig:
		clr = colorPlayerBig
	case sim.PowerFire:
		clr = colorPlayerFire
	}
	g.fillRect(screen, body.Bounds(), clr)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	run := g.world.Run()
	hud := fmt.Sprintf("LIVES %d   COINS %d   SCORE %d", run.Lives, run.Coins, run.Score)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	switch run.Phase {
	case sim.PhasePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", screenWidth/2-20, screenHeight/2)
	case sim.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", screenWidth/2-30, screenHeight/2)
	case sim.PhaseLevelComplete:
		ebitenutil.DebugPrintAt(screen, "LEVEL COMPLETE", screenWidth/2-45, screenHeight/2)
	}

	if g.banner != "" {
		ebitenutil.DebugPrintAt(screen, g.banner, screenWidth/2-len(g.banner)*3, 60)
	}
}
