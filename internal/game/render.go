package game

// Renderer receives one frame's draw calls from Engine.Render. The
// engine emits calls in a fixed back-to-front order so implementations
// can paint immediately without sorting.
type Renderer interface {
	DrawGun(x, y, rotation float64)
	DrawZombie(x, y float64)
	DrawCivilian(x, y float64, facingRight bool)
	DrawBullet(x, y, size float64, flash bool)
}
