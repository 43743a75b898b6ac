package entity

// Renderer handles drawing the flake field onto some surface
type Renderer interface {
	RenderFlake(flake *Flake)
	Clear()
	Present()
}
