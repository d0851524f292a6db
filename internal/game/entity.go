package game

// Gun is the player's turret. X is set by the aiming controller; the
// rotation is cosmetic and recomputed at draw time from the horizontal
// displacement since the previous frame.
type Gun struct {
	X, Y          float64
	Width, Height float64

	lastX    float64
	rotation float64
}

// NewGun creates a gun anchored at the given position
func NewGun(x, y float64) *Gun {
	return &Gun{
		X:      x,
		Y:      y,
		Width:  GunWidth,
		Height: GunHeight,
		lastX:  x,
	}
}

// Rotation returns the current smoothed rotation in radians
func (g *Gun) Rotation() float64 {
	return g.rotation
}

// smoothRotation advances the rotation EMA from the frame-to-frame
// horizontal delta. Called once per render, never per tick.
func (g *Gun) smoothRotation() {
	dx := g.X - g.lastX
	target := dx * RotationPerPixel
	g.rotation = g.rotation*RotationSmoothing + target*(1-RotationSmoothing)
	g.lastX = g.X
}

// Zombie walks straight down. Speed is always positive and scales with
// the difficulty ramp at spawn time.
type Zombie struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Update advances the zombie by dt seconds
func (z *Zombie) Update(dt float64) {
	z.Y += z.Speed * dt
}

// Civilian crosses the field horizontally. The speed sign encodes the
// travel direction.
type Civilian struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Update advances the civilian by dt seconds
func (c *Civilian) Update(dt float64) {
	c.X += c.Speed * dt
}

// Bullet travels along a unit direction vector. A Flash bullet is the
// muzzle-flash variant: zero speed, excluded from collisions, removed
// by the engine once its age exceeds FlashLifetime.
type Bullet struct {
	X, Y       float64
	Size       float64
	Speed      float64
	DirX, DirY float64
	Flash      bool

	age float64 // seconds since spawn, only meaningful for flashes
}

// Update advances the bullet by dt seconds
func (b *Bullet) Update(dt float64) {
	if b.Flash {
		return
	}
	b.X += b.DirX * b.Speed * dt
	b.Y += b.DirY * b.Speed * dt
}
