// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Tank Gunner"
	MaxDeltaTime = 0.05 // защита от спирали смерти на медленном кадре

	// Прицел
	SightRadius   = 250.0               // пикселей
	SightFOVDeg   = 12.0                // полное поле зрения в градусах
	Magnification = 1.0                 // множитель увеличения прицела
	NearClip      = 0.5                 // метров; ближе цель не проецируется

	// Управление орудием
	TraverseSpeedDeg     = 1.5  // градусов в секунду (точная наводка)
	TraverseSpeedFastDeg = 24.0 // градусов в секунду (с Shift)
	TraverseRampTime     = 0.5  // секунд до полной быстрой скорости
	ElevationSpeedDeg    = 4.0
	ReloadTime           = 5.0 // секунд
	MinElevationDeg      = -4.0
	MaxElevationDeg      = 20.0
	InitialElevationDeg  = 1.5
	InitialTraverseDeg   = 0.0

	// Наводчик
	PlayerEyeHeight = 2.2 // метров (высота люка башни)
	MuzzleOffset    = 2.0 // метров вперёд от глаза, чтобы не задеть себя

	// Баллистика
	Gravity   = 9.81  // м/с²
	MaxStepDT = 0.002 // шаг интегрирования (с); кадровый dt дробится до него

	// Трассер
	TracerTrailLength    = 8     // число прошлых позиций для отрисовки
	TracerSampleInterval = 0.015 // секунд между точками следа

	// Корректировщик
	SpotterDisplayTime   = 4.0  // секунд показа подсказки
	SpotterFadeTime      = 1.0  // секунд затухания в конце
	SpotterRoundTo       = 50.0 // округление поправок по дальности (метров)
	SpotterMinCorrection = 10.0 // меньше — считается «точно»

	// Эффекты
	ExplosionDuration = 1.8  // секунд
	DustBaseRadius    = 18.0 // пикселей в прицеле (масштабируется дальностью)
	HitBaseRadius     = 25.0

	// Звук
	AudioMasterVolume = 0.8  // 0.0–1.0 общая громкость
	AudioRampTime     = 0.15 // секунд нарастания/затухания для циклических звуков
	AudioSampleRate   = 44100
)

// SightFOVRad — половина углового размера прицела в радианах.
var SightFOVRad = SightFOVDeg * math.Pi / 180.0 / 2.0

var (
	ColBlack       = color.RGBA{0, 0, 0, 255}
	ColSky         = color.RGBA{155, 195, 230, 255}
	ColGround      = color.RGBA{95, 130, 60, 255}
	ColGroundLine  = color.RGBA{82, 115, 52, 255}
	ColReticle     = color.RGBA{20, 20, 20, 180}
	ColTankBody    = color.RGBA{55, 58, 48, 255}
	ColTankTop     = color.RGBA{75, 78, 65, 255}
	ColTankSide    = color.RGBA{50, 52, 44, 255}
	ColTankEdge    = color.RGBA{35, 35, 30, 255}
	ColReady       = color.RGBA{30, 220, 30, 255}
	ColReloading   = color.RGBA{220, 60, 20, 255}
	ColHUDText     = color.RGBA{200, 200, 200, 255}
	ColDust        = color.RGBA{190, 170, 110, 255}
	ColHit         = color.RGBA{255, 90, 20, 255}
	ColTracer      = color.RGBA{255, 230, 140, 255}
	ColTracerCore  = color.RGBA{255, 255, 220, 255}
	ColGaugeBG     = color.RGBA{25, 25, 25, 255}
	ColGaugeRing   = color.RGBA{100, 100, 100, 255}
	ColGaugeMark   = color.RGBA{170, 170, 150, 255}
	ColGaugeNeedle = color.RGBA{240, 200, 60, 255}
	ColSpotter     = color.RGBA{255, 220, 100, 255}
)
