package beam

// Snapshot contains the complete game state for deterministic tests.
// Angles and speeds are scaled to millidegrees so snapshots compare
// exactly.
type Snapshot struct {
	Tick         uint64
	RotationMdeg int64
	SpeedMdeg    int64
	Points       int
	Lives        int
	Armed        bool
	GameOver     bool
	Won          bool
	Paused       bool
	BlinkActive  bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		RotationMdeg: int64(g.rotation * 1000),
		SpeedMdeg:    int64(g.speed * 1000),
		Points:       g.points,
		Lives:        g.lives,
		Armed:        g.armed,
		GameOver:     g.gameOver,
		Won:          g.won,
		Paused:       g.paused,
		BlinkActive:  g.blink != nil && g.blink.Active(),
	}
}
