// internal/audio/synth.go
package audio

import (
	"math"

	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/utils"
)

// Все звуки синтезируются на старте: 16 бит, стерео, частота из
// конфига. Никаких файлов с ресурсами.

// writeSample пишет один стереосэмпл в буфер PCM.
func writeSample(buf []byte, i int, v float64) {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	s := int16(v * 32767)
	buf[4*i] = byte(s)
	buf[4*i+1] = byte(s >> 8)
	buf[4*i+2] = byte(s)
	buf[4*i+3] = byte(s >> 8)
}

// synthShot — выстрел: короткий низкочастотный удар с шумовым хвостом.
func synthShot(rng *utils.PRNGService) []byte {
	const dur = 0.6
	n := int(dur * config.AudioSampleRate)
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		t := float64(i) / config.AudioSampleRate
		env := math.Exp(-t * 9)
		// Бас проседает по частоте за первые миллисекунды
		freq := 140.0 * math.Exp(-t*6)
		body := math.Sin(2 * math.Pi * freq * t)
		noise := (rng.Float64()*2 - 1) * math.Exp(-t*14)
		writeSample(buf, i, (body*0.8+noise*0.6)*env)
	}
	return buf
}

// synthExplosion — разрыв: рокочущий шум с медленным спадом. Попадание
// звучит ниже и дольше, чем фонтан грунта.
func synthExplosion(rng *utils.PRNGService, hit bool) []byte {
	dur := 0.9
	decay := 6.0
	if hit {
		dur = 1.3
		decay = 4.0
	}
	n := int(dur * config.AudioSampleRate)
	buf := make([]byte, 4*n)
	low := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / config.AudioSampleRate
		env := math.Exp(-t * decay)
		// Однополюсный фильтр превращает белый шум в рокот
		low += ((rng.Float64()*2 - 1) - low) * 0.08
		rumble := math.Sin(2 * math.Pi * 55 * t * math.Exp(-t))
		writeSample(buf, i, (low*2.2+rumble*0.4)*env)
	}
	return buf
}

// synthReload — лязг затвора: два металлических щелчка подряд.
func synthReload(rng *utils.PRNGService) []byte {
	const dur = 0.35
	n := int(dur * config.AudioSampleRate)
	buf := make([]byte, 4*n)
	click := func(t, at float64) float64 {
		dt := t - at
		if dt < 0 {
			return 0
		}
		env := math.Exp(-dt * 60)
		return (math.Sin(2*math.Pi*2400*dt) + (rng.Float64()*2-1)*0.5) * env
	}
	for i := 0; i < n; i++ {
		t := float64(i) / config.AudioSampleRate
		writeSample(buf, i, (click(t, 0)+click(t, 0.18))*0.5)
	}
	return buf
}

// synthTraverseLoop — гул привода башни, бесшовный цикл в одну секунду.
func synthTraverseLoop(rng *utils.PRNGService) []byte {
	const dur = 1.0
	n := int(dur * config.AudioSampleRate)
	buf := make([]byte, 4*n)
	low := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / config.AudioSampleRate
		hum := math.Sin(2*math.Pi*85*t)*0.5 + math.Sin(2*math.Pi*170*t)*0.25
		low += ((rng.Float64()*2 - 1) - low) * 0.04
		// Косинусное окно на стыке убирает щелчок при зацикливании
		seam := 1.0
		if t < 0.01 {
			seam = 0.5 - 0.5*math.Cos(math.Pi*t/0.01)
		} else if t > dur-0.01 {
			seam = 0.5 - 0.5*math.Cos(math.Pi*(dur-t)/0.01)
		}
		writeSample(buf, i, (hum+low*0.8)*0.3*seam)
	}
	return buf
}
