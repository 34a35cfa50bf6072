// internal/component/player.go
package component

// PlayerState хранит состояние персонажа под управлением игрока.
type PlayerState struct {
	ActorState
	AttackFlash float64 // оставшееся время вспышки атаки, секунды
}
