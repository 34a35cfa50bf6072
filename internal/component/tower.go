// component/tower.go
package component

import (
	"go-battle-arena/pkg/arena"
	"go-battle-arena/pkg/geom"
)

// TowerInfo — неизменяемое описание башни, как его видит симуляция.
type TowerInfo struct {
	Pos  geom.Vec3
	Team arena.Team
}
