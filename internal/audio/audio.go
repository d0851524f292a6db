package audio

// Player is the control handle for game sound. Actual playback is
// host-provided; the engine and session only hold this interface and
// never reach into ambient state for it.
type Player interface {
	PlayShot()
	PlayHit()
	StartMusic()
	StopMusic()
	SetMuted(muted bool)
}

// Nop is a Player that does nothing, for hosts without sound and for
// tests.
type Nop struct{}

var _ Player = (*Nop)(nil)

func (Nop) PlayShot()      {}
func (Nop) PlayHit()       {}
func (Nop) StartMusic()    {}
func (Nop) StopMusic()     {}
func (Nop) SetMuted(_ bool) {}
