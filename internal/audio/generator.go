// internal/audio/generator.go
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// swingGenerator — восходящий синусоидальный свип для замаха игрока.
// Частота растёт от 280 до 760 Гц, огибающая гаснет экспоненциально.
type swingGenerator struct {
	sr  beep.SampleRate
	amp float64
	pos int
}

func newSwingGenerator(sr beep.SampleRate, volume float64) *swingGenerator {
	return &swingGenerator{sr: sr, amp: 0.22 * volume}
}

func (g *swingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 280 + 480*math.Min(t/0.12, 1)
		env := math.Exp(-t * 14)
		sample := g.amp * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *swingGenerator) Err() error {
	return nil
}

// impactGenerator — шумовой удар с низким гулом для вражеской атаки.
type impactGenerator struct {
	sr   beep.SampleRate
	amp  float64
	pos  int
	seed int64
}

func newImpactGenerator(sr beep.SampleRate, volume float64) *impactGenerator {
	return &impactGenerator{sr: sr, amp: volume, seed: 1}
}

func (g *impactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Exp(-t * 9)

		// Линейный конгруэнтный генератор вместо math/rand, чтобы поток
		// не зависел от глобального состояния.
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*65*t)
		sample := g.amp * env * (0.2*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *impactGenerator) Err() error {
	return nil
}

// blipGenerator — короткий чистый тон для переключения паузы.
type blipGenerator struct {
	sr  beep.SampleRate
	amp float64
	pos int
}

func newBlipGenerator(sr beep.SampleRate, volume float64) *blipGenerator {
	return &blipGenerator{sr: sr, amp: 0.18 * volume}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		env := math.Min(t/0.005, 1) * math.Exp(-t*22)
		sample := g.amp * env * math.Sin(2*math.Pi*520*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}
