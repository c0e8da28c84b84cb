// internal/audio/audio.go

// Package audio озвучивает стрельбы: одноразовые звуки выстрелов и
// разрывов плюс цикличный гул привода башни с плавной громкостью.
package audio

import (
	"bytes"

	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/utils"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Manager владеет аудиоконтекстом и заранее синтезированными PCM.
type Manager struct {
	ctx *eaudio.Context

	shotPCM      []byte
	hitPCM       []byte
	dustPCM      []byte
	reloadPCM    []byte
	traverseLoop *loopChannel
}

// loopChannel — цикличный звук с плавным подходом к целевой громкости.
type loopChannel struct {
	player *eaudio.Player
	volume float64
	target float64
}

func (c *loopChannel) update(dt float64) {
	step := dt / config.AudioRampTime
	if c.volume < c.target {
		c.volume += step
		if c.volume > c.target {
			c.volume = c.target
		}
	} else if c.volume > c.target {
		c.volume -= step
		if c.volume < c.target {
			c.volume = c.target
		}
	}
	c.player.SetVolume(c.volume * config.AudioMasterVolume)
}

// NewManager синтезирует все звуки и готовит плееры. Сид генератора
// шума фиксирован: звук одинаков от запуска к запуску.
func NewManager() (*Manager, error) {
	ctx := eaudio.NewContext(config.AudioSampleRate)
	rng := utils.NewPRNGService(1)

	loopPCM := synthTraverseLoop(rng)
	loopSrc := eaudio.NewInfiniteLoop(bytes.NewReader(loopPCM), int64(len(loopPCM)))
	loopPlayer, err := ctx.NewPlayer(loopSrc)
	if err != nil {
		return nil, err
	}
	loopPlayer.SetVolume(0)
	loopPlayer.Play()

	return &Manager{
		ctx:          ctx,
		shotPCM:      synthShot(rng),
		hitPCM:       synthExplosion(rng, true),
		dustPCM:      synthExplosion(rng, false),
		reloadPCM:    synthReload(rng),
		traverseLoop: &loopChannel{player: loopPlayer},
	}, nil
}

func (m *Manager) playOneShot(pcm []byte, volume float64) {
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume * config.AudioMasterVolume)
	p.Play()
}

// PlayShot звучит в момент выстрела.
func (m *Manager) PlayShot() {
	m.playOneShot(m.shotPCM, 1.0)
}

// PlayExplosion звучит при разрыве; дальность приглушает звук.
func (m *Manager) PlayExplosion(hit bool, distance float64) {
	volume := 1.0
	if distance > 100 {
		volume = 100 / distance
	}
	if hit {
		m.playOneShot(m.hitPCM, volume)
	} else {
		m.playOneShot(m.dustPCM, volume*0.8)
	}
}

// PlayReload — лязг затвора в момент готовности орудия.
func (m *Manager) PlayReload() {
	m.playOneShot(m.reloadPCM, 0.6)
}

// SetTraverse задаёт целевую громкость гула привода: тишина, точная
// наводка или быстрый перенос.
func (m *Manager) SetTraverse(active, fast bool) {
	switch {
	case !active:
		m.traverseLoop.target = 0
	case fast:
		m.traverseLoop.target = 1.0
	default:
		m.traverseLoop.target = 0.35
	}
}

// Update подводит громкости цикличных каналов к целевым.
func (m *Manager) Update(dt float64) {
	m.traverseLoop.update(dt)
}
