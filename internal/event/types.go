// internal/event/types.go
package event

const (
	PlayerAttacked     EventType = "PlayerAttacked"     // Игрок провёл атаку
	EnemyAttackStarted EventType = "EnemyAttackStarted" // Враг начал замах
	EnemyStateChanged  EventType = "EnemyStateChanged"  // Враг сменил режим поведения
	GamePaused         EventType = "GamePaused"
	GameResumed        EventType = "GameResumed"
)

// StateChange — полезная нагрузка EnemyStateChanged.
type StateChange struct {
	From, To string
}
