// pkg/arena/arena.go
package arena

import (
	"math"

	"go-battle-arena/internal/config"
	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/geom"
)

// Team identifies which side a landmark belongs to.
type Team int

const (
	TeamOrder Team = iota
	TeamChaos
)

// String returns a short team label for logs and overlays.
func (t Team) String() string {
	if t == TeamOrder {
		return "order"
	}
	return "chaos"
}

// Tower is a static landmark owned by one team.
type Tower struct {
	Pos  geom.Vec3
	Team Team
}

// Layout describes the playable arena: a diamond-shaped walkable area
// (Manhattan distance from the center) with one fountain per team and a
// fixed set of towers.
type Layout struct {
	HalfExtent float64
	Fountains  [2]geom.Vec3 // indexed by Team
	Towers     []Tower
}

// NewLayout builds the default symmetric arena.
func NewLayout() *Layout {
	return &Layout{
		HalfExtent: config.ArenaHalfExtent,
		Fountains: [2]geom.Vec3{
			TeamOrder: geom.V(-config.FountainOffset, 0, 0),
			TeamChaos: geom.V(config.FountainOffset, 0, 0),
		},
		Towers: []Tower{
			{Pos: geom.V(-config.TowerOffsetX, 0, -config.TowerOffsetZ), Team: TeamOrder},
			{Pos: geom.V(-config.TowerOffsetX, 0, config.TowerOffsetZ), Team: TeamOrder},
			{Pos: geom.V(config.TowerOffsetX, 0, -config.TowerOffsetZ), Team: TeamChaos},
			{Pos: geom.V(config.TowerOffsetX, 0, config.TowerOffsetZ), Team: TeamChaos},
		},
	}
}

// Contains reports whether the ground projection of p lies inside the
// walkable diamond.
func (l *Layout) Contains(p geom.Vec3) bool {
	return math.Abs(p.X)+math.Abs(p.Z) <= l.HalfExtent
}

// Fountain returns the fountain position of the given team.
func (l *Layout) Fountain(t Team) geom.Vec3 {
	return l.Fountains[t]
}

// TowersHostileTo returns the towers not owned by the given team.
func (l *Layout) TowersHostileTo(t Team) []Tower {
	out := make([]Tower, 0, len(l.Towers))
	for _, tw := range l.Towers {
		if tw.Team != t {
			out = append(out, tw)
		}
	}
	return out
}

// RandomPoint returns a uniformly distributed point inside the arena.
// The diamond is the image of a square under a 45-degree rotation, so a
// point can be constructed directly instead of sampled by rejection.
func (l *Layout) RandomPoint(rng *utils.PRNGService) geom.Vec3 {
	u := rng.Range(-l.HalfExtent/2, l.HalfExtent/2)
	v := rng.Range(-l.HalfExtent/2, l.HalfExtent/2)
	return geom.V(u+v, 0, u-v)
}
