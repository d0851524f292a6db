package game

import (
	"time"

	"github.com/mratw/zombie-defense/internal/dependencies/random"
)

// Callbacks are the engine's outbound events. Any field may be nil.
type Callbacks struct {
	OnScoreDelta func(delta int)
	OnLifeLost   func()
	OnShot       func()
	OnHit        func()
}

// Engine runs the simulation. It has no internal scheduler: time only
// passes when the host calls Advance, which makes every behaviour
// deterministic under test. All entry points are safe for concurrent
// use with Advance running on another goroutine, because pointer input
// goes through a queue drained at the start of each step.
type Engine struct {
	width, height float64

	gun       *Gun
	zombies   []*Zombie
	civilians []*Civilian
	bullets   []*Bullet

	inputs inputQueue
	paused bool

	elapsed             time.Duration
	zombieSpawnTimer    time.Duration
	civilianSpawnTimer  time.Duration
	difficultyTimer     time.Duration
	zombieSpawnInterval time.Duration
	difficulty          float64

	random    random.Random
	callbacks Callbacks
}

// NewEngine creates an engine for a playfield of the given size
func NewEngine(width, height float64, rnd random.Random, callbacks Callbacks) *Engine {
	e := &Engine{
		width:     width,
		height:    height,
		random:    rnd,
		callbacks: callbacks,
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.gun = NewGun(e.width/2, e.height-GunBottomOffset)
	e.zombies = nil
	e.civilians = nil
	e.bullets = nil
	e.elapsed = 0
	e.zombieSpawnTimer = 0
	e.civilianSpawnTimer = 0
	e.difficultyTimer = 0
	e.zombieSpawnInterval = ZombieSpawnInterval
	e.difficulty = 1.0
	e.paused = false
}

// Reset returns the engine to its initial state. Queued input is
// discarded along with the entities.
func (e *Engine) Reset() {
	e.inputs.drain()
	e.reset()
}

// AimAt queues a pointer-move event. The gun position updates on the
// next Advance.
func (e *Engine) AimAt(x, y float64) {
	e.inputs.push(inputEvent{kind: inputAim, x: x, y: y})
}

// Fire queues a shot towards the given point
func (e *Engine) Fire(x, y float64) {
	e.inputs.push(inputEvent{kind: inputFire, x: x, y: y})
}

// Pause stops the simulation. Advance becomes a no-op but input keeps
// queueing, so aiming done while paused applies on resume.
func (e *Engine) Pause() { e.paused = true }

// Resume restarts a paused simulation
func (e *Engine) Resume() { e.paused = false }

// Paused reports whether the simulation is paused
func (e *Engine) Paused() bool { return e.paused }

// Resize changes the playfield size. The gun is re-anchored to the new
// bottom edge; entities in flight keep their positions and despawn
// normally if the new bounds exclude them.
func (e *Engine) Resize(width, height float64) {
	e.width = width
	e.height = height
	e.gun.Y = height - GunBottomOffset
	if e.gun.X > width {
		e.gun.X = width / 2
	}
}

// Elapsed returns the total simulated time
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// Counts returns the live entity counts, flashes excluded
func (e *Engine) Counts() (zombies, civilians, bullets int) {
	for _, b := range e.bullets {
		if !b.Flash {
			bullets++
		}
	}
	return len(e.zombies), len(e.civilians), bullets
}

// Advance steps the simulation by dt. Queued input is applied first,
// in arrival order, so an aim event followed by a fire event in the
// same step shoots from the updated gun position.
func (e *Engine) Advance(dt time.Duration) {
	if e.paused || dt <= 0 {
		return
	}
	for _, ev := range e.inputs.drain() {
		switch ev.kind {
		case inputAim:
			e.gun.X = AimGunX(ev.x, e.width)
		case inputFire:
			e.fire(ev.x, ev.y)
		}
	}

	e.elapsed += dt
	e.advanceDifficulty(dt)
	e.spawn(dt)

	seconds := dt.Seconds()
	for _, z := range e.zombies {
		z.Update(seconds)
	}
	for _, c := range e.civilians {
		c.Update(seconds)
	}
	for _, b := range e.bullets {
		if b.Flash {
			b.age += seconds
		} else {
			b.Update(seconds)
		}
	}

	e.despawn()
	e.resolveCollisions()
}

func (e *Engine) advanceDifficulty(dt time.Duration) {
	e.difficultyTimer += dt
	for e.difficultyTimer >= DifficultyInterval {
		e.difficultyTimer -= DifficultyInterval
		e.difficulty += DifficultyStep
		if e.zombieSpawnInterval > MinZombieSpawnInterval {
			e.zombieSpawnInterval -= ZombieSpawnStep
			if e.zombieSpawnInterval < MinZombieSpawnInterval {
				e.zombieSpawnInterval = MinZombieSpawnInterval
			}
		}
	}
}

func (e *Engine) spawn(dt time.Duration) {
	e.zombieSpawnTimer += dt
	for e.zombieSpawnTimer >= e.zombieSpawnInterval {
		e.zombieSpawnTimer -= e.zombieSpawnInterval
		e.spawnZombie()
	}
	e.civilianSpawnTimer += dt
	for e.civilianSpawnTimer >= CivilianSpawnInterval {
		e.civilianSpawnTimer -= CivilianSpawnInterval
		e.spawnCivilian()
	}
}

func (e *Engine) spawnZombie() {
	x := ZombieSpawnMargin + e.random.Float64()*(e.width-2*ZombieSpawnMargin)
	speed := (ZombieBaseSpeed + e.random.Float64()*ZombieSpeedJitter) * e.difficulty
	e.zombies = append(e.zombies, &Zombie{
		X:     x,
		Y:     -ZombieSize,
		Size:  ZombieSize,
		Speed: speed,
	})
}

func (e *Engine) spawnCivilian() {
	fromLeft := e.random.Float64() < 0.5
	y := CivilianSpawnTopMargin + e.random.Float64()*(e.height/2)
	speed := CivilianBaseSpeed + e.random.Float64()*CivilianSpeedJitter
	c := &Civilian{Y: y, Size: CivilianSize, Speed: speed}
	if fromLeft {
		c.X = -CivilianSize
	} else {
		c.X = e.width + CivilianSize
		c.Speed = -speed
	}
	e.civilians = append(e.civilians, c)
}

func (e *Engine) fire(targetX, targetY float64) {
	barrelX := e.gun.X
	barrelY := e.gun.Y - e.gun.Height/2
	dirX, dirY := FireDirection(targetX-barrelX, targetY-barrelY)
	e.bullets = append(e.bullets,
		&Bullet{
			X: barrelX, Y: barrelY,
			Size:  BulletSize,
			Speed: BulletSpeed,
			DirX:  dirX, DirY: dirY,
		},
		&Bullet{
			X: barrelX, Y: barrelY,
			Size:  FlashSize,
			Flash: true,
		})
	if e.callbacks.OnShot != nil {
		e.callbacks.OnShot()
	}
}

// collides reports whether two circles overlap. Touching exactly does
// not count as a hit.
func collides(x1, y1, size1, x2, y2, size2 float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	r := (size1 + size2) / 2
	return dx*dx+dy*dy < r*r
}

// resolveCollisions checks every live bullet against zombies first,
// then civilians. Each bullet resolves at most one hit per step, and
// zombies always take priority over civilians even when a bullet
// overlaps both.
func (e *Engine) resolveCollisions() {
	survivors := e.bullets[:0]
	for _, b := range e.bullets {
		if b.Flash {
			survivors = append(survivors, b)
			continue
		}
		if zi := e.hitZombie(b); zi >= 0 {
			e.zombies = append(e.zombies[:zi], e.zombies[zi+1:]...)
			e.score(ZombiePoints)
			if e.callbacks.OnHit != nil {
				e.callbacks.OnHit()
			}
			continue
		}
		if ci := e.hitCivilian(b); ci >= 0 {
			e.civilians = append(e.civilians[:ci], e.civilians[ci+1:]...)
			e.score(CivilianPenalty)
			if e.callbacks.OnHit != nil {
				e.callbacks.OnHit()
			}
			continue
		}
		survivors = append(survivors, b)
	}
	e.bullets = survivors
}

func (e *Engine) hitZombie(b *Bullet) int {
	for i, z := range e.zombies {
		if collides(b.X, b.Y, b.Size, z.X, z.Y, z.Size) {
			return i
		}
	}
	return -1
}

func (e *Engine) hitCivilian(b *Bullet) int {
	for i, c := range e.civilians {
		if collides(b.X, b.Y, b.Size, c.X, c.Y, c.Size) {
			return i
		}
	}
	return -1
}

func (e *Engine) score(delta int) {
	if e.callbacks.OnScoreDelta != nil {
		e.callbacks.OnScoreDelta(delta)
	}
}

// despawn removes entities that left the playfield and expired
// flashes. It runs before collision resolution, so a zombie that
// crossed the bottom this tick cannot also be shot. A zombie whose
// center passes the bottom edge costs exactly one life.
func (e *Engine) despawn() {
	zombies := e.zombies[:0]
	for _, z := range e.zombies {
		if z.Y > e.height {
			if e.callbacks.OnLifeLost != nil {
				e.callbacks.OnLifeLost()
			}
			continue
		}
		zombies = append(zombies, z)
	}
	e.zombies = zombies

	civilians := e.civilians[:0]
	for _, c := range e.civilians {
		if c.X+c.Size < 0 && c.Speed < 0 {
			continue
		}
		if c.X-c.Size > e.width && c.Speed > 0 {
			continue
		}
		civilians = append(civilians, c)
	}
	e.civilians = civilians

	bullets := e.bullets[:0]
	for _, b := range e.bullets {
		if b.Flash {
			if b.age >= FlashLifetime.Seconds() {
				continue
			}
		} else if b.X < -b.Size || b.X > e.width+b.Size ||
			b.Y < -b.Size || b.Y > e.height+b.Size {
			continue
		}
		bullets = append(bullets, b)
	}
	e.bullets = bullets
}

// Render draws the frame in a fixed order: gun, then zombies, then
// civilians, then bullets and flashes on top.
func (e *Engine) Render(r Renderer) {
	e.gun.smoothRotation()
	r.DrawGun(e.gun.X, e.gun.Y, e.gun.Rotation())
	for _, z := range e.zombies {
		r.DrawZombie(z.X, z.Y)
	}
	for _, c := range e.civilians {
		r.DrawCivilian(c.X, c.Y, c.Speed > 0)
	}
	for _, b := range e.bullets {
		r.DrawBullet(b.X, b.Y, b.Size, b.Flash)
	}
}
