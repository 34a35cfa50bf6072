package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
	assert.Equal(t, -5.0, Lerp(0, -10, 0.5))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
	assert.InDelta(t, 1.0, NormalizeAngle(1.0), 1e-12)
	// Диапазон полуоткрытый: -π каноникализируется в +π.
	assert.Equal(t, math.Pi, NormalizeAngle(-math.Pi))
	assert.Equal(t, math.Pi, NormalizeAngle(math.Pi))
}

func TestLerpAngle_ShortestPath(t *testing.T) {
	// От 170° к -170° короткий путь идёт через 180°, а не через ноль.
	from := 170.0 * math.Pi / 180
	to := -170.0 * math.Pi / 180

	mid := LerpAngle(from, to, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(mid), 1e-9)

	done := LerpAngle(from, to, 1)
	assert.InDelta(t, to, done, 1e-9)
}

func TestStepAngle_Bounded(t *testing.T) {
	// Шаг меньше разницы: поворот ровно на maxStep в нужную сторону.
	got := StepAngle(0, 1.0, 0.2)
	assert.InDelta(t, 0.2, got, 1e-12)

	got = StepAngle(0, -1.0, 0.2)
	assert.InDelta(t, -0.2, got, 1e-12)
}

func TestStepAngle_ReachesTargetExactly(t *testing.T) {
	// Шаг больше разницы: возвращается ровно целевой угол.
	got := StepAngle(0.9, 1.0, 0.5)
	assert.Equal(t, 1.0, got)
}

func TestStepAngle_WrapsAcrossPi(t *testing.T) {
	from := 170.0 * math.Pi / 180
	to := -170.0 * math.Pi / 180

	got := StepAngle(from, to, 0.1)
	// Движение в сторону увеличения угла, с переходом через π.
	assert.Greater(t, got, from)

	// Много мелких шагов сходятся к цели.
	a := from
	for i := 0; i < 100; i++ {
		a = StepAngle(a, to, 0.05)
	}
	assert.InDelta(t, to, a, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-3, 0, 5))
	assert.Equal(t, 2.0, Clamp(2, 0, 5))
}
