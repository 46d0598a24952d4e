package sim

import (
	"log"

	"github.com/plus3/brickhop/ecs"
)

// PlatformRecord is one platform in a level description. Contains optionally
// names the powerup a question block releases ("mushroom", "fire_flower",
// "star", "chicken").
type PlatformRecord struct {
	Rect     Rect
	Kind     PlatformKind
	Contains string
}

// SpawnRecord places an enemy or standalone powerup by kind tag.
type SpawnRecord struct {
	X, Y float64
	Kind string
}

// Level is the external level description consumed at (re)load time. How it
// is produced (JSON, editor, code) is outside the simulation core.
type Level struct {
	Name        string
	PlayerStart Vec2
	Platforms   []PlatformRecord
	Enemies     []SpawnRecord
	Powerups    []SpawnRecord
	Goal        *Rect
}

// LevelInfo is the loaded level's metadata singleton.
type LevelInfo struct {
	Name        string
	PlayerStart Vec2
	Goal        *Rect
}

// RegisterComponents registers every simulation component type.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[PlayerState](registry)
	ecs.RegisterComponent[Enemy](registry)
	ecs.RegisterComponent[Powerup](registry)
	ecs.RegisterComponent[Fireball](registry)
}

// LoadLevel validates a level description and populates the storage:
// singletons for platforms, level info, input, events, and run state, plus
// the player, enemy, and powerup entities. Records with unrecognized kind
// tags are skipped with a warning; they never fail the load.
func LoadLevel(storage *ecs.Storage, level Level) {
	platforms := make([]Platform, 0, len(level.Platforms))
	for _, rec := range level.Platforms {
		if rec.Rect.W <= 0 || rec.Rect.H <= 0 {
			log.Printf("sim: skipping platform with empty bounds at (%.0f, %.0f)", rec.Rect.X, rec.Rect.Y)
			continue
		}
		contains := PowerupNone
		if rec.Contains != "" {
			kind, ok := ParsePowerupTag(rec.Contains)
			if !ok {
				log.Printf("sim: unknown contained powerup %q at (%.0f, %.0f)", rec.Contains, rec.Rect.X, rec.Rect.Y)
			}
			contains = kind
		}
		platforms = append(platforms, Platform{
			Bounds:   rec.Rect,
			Kind:     rec.Kind,
			Contains: contains,
		})
	}

	storage.AddSingleton(PlatformSet{Platforms: platforms})
	storage.AddSingleton(LevelInfo{
		Name:        level.Name,
		PlayerStart: level.PlayerStart,
		Goal:        level.Goal,
	})
	storage.AddSingleton(Input{})
	storage.AddSingleton(EventQueue{})
	storage.AddSingleton(NewRunState())

	var player PlayerState
	playerBody := Body{
		Position:    level.PlayerStart,
		Size:        PlayerSize(PowerSmall, false),
		FacingRight: true,
	}
	storage.Spawn(playerBody, player)

	for _, rec := range level.Enemies {
		kind, ok := ParseEnemyTag(rec.Kind)
		if !ok {
			log.Printf("sim: skipping enemy spawn with unknown kind %q at (%.0f, %.0f)", rec.Kind, rec.X, rec.Y)
			continue
		}
		enemy, body := NewEnemy(kind, Vec2{X: rec.X, Y: rec.Y})
		storage.Spawn(enemy, body)
	}

	for _, rec := range level.Powerups {
		kind, ok := ParsePowerupTag(rec.Kind)
		if !ok {
			log.Printf("sim: skipping powerup spawn with unknown kind %q at (%.0f, %.0f)", rec.Kind, rec.X, rec.Y)
			continue
		}
		storage.Spawn(
			Powerup{Kind: kind, Active: true},
			NewPowerupBody(Vec2{X: rec.X, Y: rec.Y}),
		)
	}
}

// BuiltinLevel returns the default playable level: two ground runs split by
// a pit, a gravel ledge with question blocks, a coin row, a patrol of
// enemies, and a goal post at the far right.
func BuiltinLevel() Level {
	goal := Rect{X: 3040, Y: 64, W: 16, H: 320}
	return Level{
		Name:        "1-1",
		PlayerStart: Vec2{X: 96, Y: 64},
		Platforms: []PlatformRecord{
			{Rect: Rect{X: 0, Y: 0, W: 1280, H: 64}, Kind: PlatformGround},
			{Rect: Rect{X: 1408, Y: 0, W: 1792, H: 64}, Kind: PlatformGround},
			{Rect: Rect{X: 512, Y: 192, W: 256, H: 64}, Kind: PlatformGravel},
			{Rect: Rect{X: 704, Y: 320, W: 64, H: 64}, Kind: PlatformQuestion, Contains: "mushroom"},
			{Rect: Rect{X: 832, Y: 320, W: 64, H: 64}, Kind: PlatformQuestion, Contains: "fire_flower"},
			{Rect: Rect{X: 960, Y: 320, W: 64, H: 64}, Kind: PlatformQuestion},
			{Rect: Rect{X: 1600, Y: 256, W: 64, H: 64}, Kind: PlatformQuestion, Contains: "star"},
			{Rect: Rect{X: 544, Y: 288, W: 32, H: 32}, Kind: PlatformCoin},
			{Rect: Rect{X: 608, Y: 288, W: 32, H: 32}, Kind: PlatformCoin},
			{Rect: Rect{X: 672, Y: 288, W: 32, H: 32}, Kind: PlatformCoin},
			{Rect: Rect{X: 1440, Y: 96, W: 32, H: 32}, Kind: PlatformCoin},
			{Rect: Rect{X: 1488, Y: 96, W: 32, H: 32}, Kind: PlatformCoin},
			{Rect: Rect{X: 2240, Y: 192, W: 192, H: 64}, Kind: PlatformGravel},
		},
		Enemies: []SpawnRecord{
			{X: 900, Y: 64, Kind: "goomba"},
			{X: 1700, Y: 64, Kind: "goomba"},
			{X: 2100, Y: 64, Kind: "koopa"},
		},
		Powerups: []SpawnRecord{
			{X: 2600, Y: 64, Kind: "chicken"},
		},
		Goal: &goal,
	}
}
