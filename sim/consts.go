package sim

// World units are pixels, velocities px/s, accelerations px/s². Tuned for
// 64-px tiles at 60 fps so a single tick never moves an actor more than one
// tile height (no tunneling through standard platforms).
const (
	TileSize = 64.0

	Gravity              = -3000.0
	JumpImpulse          = 1150.0
	JumpHoldGravityScale = 0.45
	JumpHoldMax          = 0.22

	MoveSpeed      = 260.0
	DuckSpeedScale = 0.35

	StompBounce       = 520.0
	DeathJumpImpulse  = 780.0
	DeathGravity      = -2200.0
	DeathSequenceTime = 2.5

	GoombaSpeed      = 70.0
	KoopaSpeed       = 55.0
	ShellSpeed       = 640.0
	ShellIdleTimeout = 5.0
	StompDuration    = 0.5

	DamageInvincibilityTime = 2.0
	StarTime                = 8.0
	TransitionTime          = 0.6

	PowerupSpeed = 110.0
	PowerupPop   = 560.0

	FireballSpeed  = 430.0
	FireballBounce = 380.0
	MaxFireballs   = 2
)

// Score awards.
const (
	ScoreCoin         = 100
	ScoreStomp        = 100
	ScoreShellKick    = 200
	ScoreEnemyKilled  = 100
	ScorePowerup      = 1000
	ScoreChicken      = 500
	ScoreLevelCleared = 5000
)

// Actor collision sizes, indexed by state where relevant.
var (
	sizeSmall     = Vec2{X: 28, Y: 32}
	sizeSmallDuck = Vec2{X: 28, Y: 16}
	sizeBig       = Vec2{X: 32, Y: 60}
	sizeBigDuck   = Vec2{X: 32, Y: 30}

	sizeGoomba     = Vec2{X: 28, Y: 28}
	sizeKoopa      = Vec2{X: 28, Y: 44}
	sizeKoopaShell = Vec2{X: 28, Y: 26}

	sizePowerup  = Vec2{X: 28, Y: 28}
	sizeFireball = Vec2{X: 12, Y: 12}
)
