package sim

// Clock is the tick counter that gates slower-cadence behaviors.
// Tick 0 is the state before the first Step, which runs tick 1.
type Clock struct {
	tick       uint64
	shootEvery uint64
	moveEvery  uint64
}

// NewClock creates a clock that allows firing every shootEvery ticks and
// creature movement every moveEvery ticks. Values below 1 mean every tick.
func NewClock(shootEvery, moveEvery int) *Clock {
	return &Clock{
		shootEvery: cadence(shootEvery),
		moveEvery:  cadence(moveEvery),
	}
}

func cadence(n int) uint64 {
	if n < 1 {
		return 1
	}
	return uint64(n)
}

// Advance moves to the next tick and returns it.
func (c *Clock) Advance() uint64 {
	c.tick++
	return c.tick
}

// Tick returns the current tick.
func (c *Clock) Tick() uint64 {
	return c.tick
}

// ShootEvery returns the firing cadence in ticks.
func (c *Clock) ShootEvery() int {
	return int(c.shootEvery)
}

// SetShootEvery changes the firing cadence. Values below 1 mean every tick.
func (c *Clock) SetShootEvery(n int) {
	c.shootEvery = cadence(n)
}

// IsShootingTick reports whether firing may happen on the current tick.
func (c *Clock) IsShootingTick() bool {
	return c.tick%c.shootEvery == 0
}

// IsCreatureMoveTick reports whether creatures and sliding boxes move on the current tick.
func (c *Clock) IsCreatureMoveTick() bool {
	return c.tick%c.moveEvery == 0
}
