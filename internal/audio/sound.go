// internal/audio/sound.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-battle-arena/internal/event"
	"go-battle-arena/internal/utils"
)

const (
	sampleRate     = beep.SampleRate(44100)
	speakerBuffer  = time.Millisecond * 80
	swingDuration  = time.Millisecond * 140
	impactDuration = time.Millisecond * 280
	blipDuration   = time.Millisecond * 90
)

// SoundManager воспроизводит процедурные звуковые эффекты. Все звуки
// синтезируются на лету, файлов с сэмплами нет. Без инициализации любой
// вызов безопасно превращается в no-op, игра обязана работать и без звука.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager создаёт менеджер звука. Громкость зажимается в [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: utils.Clamp(volume, 0, 1),
	}
}

// Initialize открывает аудиоустройство и запускает микшер. Повторный
// вызов ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит всё, что ещё звучит. Безопасен без инициализации.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// Attach подписывает менеджер на игровые события, по которым он играет.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.Subscribe(event.PlayerAttacked, sm)
	d.Subscribe(event.EnemyAttackStarted, sm)
	d.Subscribe(event.GamePaused, sm)
	d.Subscribe(event.GameResumed, sm)
}

// OnEvent реализует event.Listener и раскладывает события по эффектам.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerAttacked:
		sm.PlaySwing()
	case event.EnemyAttackStarted:
		sm.PlayImpact()
	case event.GamePaused, event.GameResumed:
		sm.PlayBlip()
	}
}

// PlaySwing играет короткий восходящий свист замаха игрока.
func (sm *SoundManager) PlaySwing() {
	sm.playTake(swingDuration, newSwingGenerator(sampleRate, sm.volume))
}

// PlayImpact играет глухой удар вражеской атаки.
func (sm *SoundManager) PlayImpact() {
	sm.playTake(impactDuration, newImpactGenerator(sampleRate, sm.volume))
}

// PlayBlip играет щелчок переключения паузы.
func (sm *SoundManager) PlayBlip() {
	sm.playTake(blipDuration, newBlipGenerator(sampleRate, sm.volume))
}

// playTake добавляет одноразовый обрезанный стример в микшер.
func (sm *SoundManager) playTake(d time.Duration, gen beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Add(beep.Take(sampleRate.N(d), gen))
}
