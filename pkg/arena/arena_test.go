package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-battle-arena/internal/utils"
	"go-battle-arena/pkg/geom"
)

func TestLayout_Contains(t *testing.T) {
	l := NewLayout()

	assert.True(t, l.Contains(geom.V(0, 0, 0)))
	assert.True(t, l.Contains(geom.V(l.HalfExtent, 0, 0)))
	assert.True(t, l.Contains(geom.V(l.HalfExtent/2, 0, l.HalfExtent/2)))

	assert.False(t, l.Contains(geom.V(l.HalfExtent, 0, 0.001)))
	assert.False(t, l.Contains(geom.V(-l.HalfExtent-0.001, 0, 0)))
	// Угол квадрата, но не ромба.
	assert.False(t, l.Contains(geom.V(l.HalfExtent*0.9, 0, l.HalfExtent*0.9)))
}

func TestLayout_ContainsIgnoresHeight(t *testing.T) {
	l := NewLayout()
	assert.True(t, l.Contains(geom.V(1, 100, 1)))
}

func TestLayout_Landmarks(t *testing.T) {
	l := NewLayout()

	require.Len(t, l.Towers, 4)
	for _, tw := range l.Towers {
		assert.True(t, l.Contains(tw.Pos), "tower outside arena: %+v", tw)
	}
	assert.True(t, l.Contains(l.Fountain(TeamOrder)))
	assert.True(t, l.Contains(l.Fountain(TeamChaos)))

	// Фонтаны на противоположных сторонах.
	assert.Less(t, l.Fountain(TeamOrder).X, 0.0)
	assert.Greater(t, l.Fountain(TeamChaos).X, 0.0)
}

func TestLayout_TowersHostileTo(t *testing.T) {
	l := NewLayout()

	hostile := l.TowersHostileTo(TeamChaos)
	require.Len(t, hostile, 2)
	for _, tw := range hostile {
		assert.Equal(t, TeamOrder, tw.Team)
	}
}

func TestLayout_RandomPointInside(t *testing.T) {
	l := NewLayout()
	rng := utils.NewPRNGService(99)

	for i := 0; i < 5000; i++ {
		p := l.RandomPoint(rng)
		require.True(t, l.Contains(p), "point outside arena: %+v", p)
		require.Equal(t, 0.0, p.Y)
	}
}

func TestLayout_RandomPointCoversCorners(t *testing.T) {
	// Точки должны попадать во все четыре сектора ромба.
	l := NewLayout()
	rng := utils.NewPRNGService(5)

	var q [4]int
	for i := 0; i < 2000; i++ {
		p := l.RandomPoint(rng)
		idx := 0
		if p.X >= 0 {
			idx |= 1
		}
		if p.Z >= 0 {
			idx |= 2
		}
		q[idx]++
	}
	for i, n := range q {
		assert.Greater(t, n, 0, "quadrant %d empty", i)
	}
}

func TestTeam_String(t *testing.T) {
	assert.Equal(t, "order", TeamOrder.String())
	assert.Equal(t, "chaos", TeamChaos.String())
}
