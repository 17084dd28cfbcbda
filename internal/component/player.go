// internal/component/player.go
package component

// Player — маркер сущности, которой управляет игрок.
type Player struct{}
