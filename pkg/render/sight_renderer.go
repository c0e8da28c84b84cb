// pkg/render/sight_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/sight"
	"go-tank-gunner/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// maskSegments — число сегментов аппроксимации окружности маски.
const maskSegments = 96

// SightRenderer рисует картинку оптического прицела: небо и грунт,
// силуэты целей, трассеры, разрывы и сетку. Всё, что выходит за круг
// окуляра, закрывается предрендеренной маской.
type SightRenderer struct {
	projector *sight.Projector
	cx, cy    float64
	radius    float64

	whiteImg  *ebiten.Image
	maskImage *ebiten.Image
	fontFace  font.Face

	vs []ebiten.Vertex
	is []uint16
}

func NewSightRenderer(projector *sight.Projector, screenWidth, screenHeight int) *SightRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	r := &SightRenderer{
		projector: projector,
		cx:        float64(screenWidth) / 2,
		cy:        float64(screenHeight) / 2,
		radius:    config.SightRadius,
		whiteImg:  whiteImg,
		maskImage: ebiten.NewImage(screenWidth, screenHeight),
		fontFace:  basicfont.Face7x13,
		vs:        make([]ebiten.Vertex, 0, 256),
		is:        make([]uint16, 0, 384),
	}
	r.renderMaskImage(screenWidth, screenHeight)
	return r
}

// renderMaskImage предрендерит чёрную заливку экрана с круглым
// вырезом окуляра: прямоугольник и окружность с противоположным
// обходом дают дыру при ненулевом правиле заливки.
func (r *SightRenderer) renderMaskImage(w, h int) {
	path := vector.Path{}
	path.MoveTo(0, 0)
	path.LineTo(float32(w), 0)
	path.LineTo(float32(w), float32(h))
	path.LineTo(0, float32(h))
	path.Close()

	for i := 0; i <= maskSegments; i++ {
		a := -2 * math.Pi * float64(i) / maskSegments
		px := r.cx + r.radius*math.Cos(a)
		py := r.cy + r.radius*math.Sin(a)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()

	r.fillPath(r.maskImage, path, config.ColBlack)
}

// Scene — всё, что кадр хочет показать в окуляре.
type Scene struct {
	Eye        geom.Vec3
	Basis      geom.Basis
	Targets    []*component.Target
	Shells     []*component.Projectile
	Explosions []*component.Explosion
}

func (r *SightRenderer) Draw(screen *ebiten.Image, s Scene) {
	r.drawTerrain(screen, s)
	r.drawRangeLines(screen, s)
	for _, t := range s.Targets {
		r.drawTarget(screen, s, t)
	}
	for _, sh := range s.Shells {
		r.drawTracer(screen, s, sh)
	}
	for _, e := range s.Explosions {
		r.drawExplosion(screen, s, e)
	}

	screen.DrawImage(r.maskImage, nil)
	r.drawReticle(screen)
}

// drawTerrain заливает круг прицела небом и грунтом. Линия горизонта —
// проекция очень удалённой точки на высоте глаза; крена нет, поэтому
// граница всегда горизонтальна.
func (r *SightRenderer) drawTerrain(screen *ebiten.Image, s Scene) {
	horizonDir := s.Basis.Forward
	horizonDir.Y = 0
	horizonDir = horizonDir.Normalize()
	far := s.Eye.Add(horizonDir.Scale(1e6))

	var horizonY float64
	if off, ok := r.projector.ProjectRaw(far, s.Eye, s.Basis); ok {
		horizonY = r.cy + off.Y
	} else if s.Basis.Forward.Y < 0 {
		horizonY = r.cy - r.radius // ствол смотрит вниз, в окуляре один грунт
	} else {
		horizonY = r.cy + r.radius
	}
	if horizonY < r.cy-r.radius {
		horizonY = r.cy - r.radius
	}
	if horizonY > r.cy+r.radius {
		horizonY = r.cy + r.radius
	}

	top := float32(r.cy - r.radius)
	bottom := float32(r.cy + r.radius)
	left := float32(r.cx - r.radius)
	right := float32(r.cx + r.radius)

	vector.DrawFilledRect(screen, left, top, right-left, float32(horizonY)-top, config.ColSky, false)
	vector.DrawFilledRect(screen, left, float32(horizonY), right-left, bottom-float32(horizonY), config.ColGround, false)
}

// drawRangeLines рисует поперечные отметки дальности на грунте каждые
// 100 м, с подписью на каждых 500 м.
func (r *SightRenderer) drawRangeLines(screen *ebiten.Image, s Scene) {
	horizonDir := s.Basis.Forward
	horizonDir.Y = 0
	horizonDir = horizonDir.Normalize()
	if horizonDir.Len() == 0 {
		return
	}

	for rangeM := 100.0; rangeM <= 1500.0; rangeM += 100.0 {
		ground := s.Eye.Add(horizonDir.Scale(rangeM))
		ground.Y = 0
		off, ok := r.projector.Project(ground, s.Eye, s.Basis)
		if !ok {
			continue
		}
		x := r.cx + off.X
		y := r.cy + off.Y
		// Полуширина отметки — угловой размер 15 м на этой дальности
		half := r.projector.PixelsPerRadian() * (15.0 / rangeM)
		vector.StrokeLine(screen, float32(x-half), float32(y), float32(x+half), float32(y), 1, config.ColGroundLine, false)
		if math.Mod(rangeM, 500) == 0 {
			label := fmt.Sprintf("%d", int(rangeM))
			text.Draw(screen, label, r.fontFace, int(x+half)+4, int(y)+4, config.ColGroundLine)
		}
	}
}

// Грани коробки цели: индексы углов и внешняя нормаль.
var boxFaces = [6]struct {
	idx    [4]int
	normal geom.Vec3
}{
	{[4]int{0, 1, 5, 4}, geom.Vec3{Y: -1}}, // дно
	{[4]int{2, 3, 7, 6}, geom.Vec3{Y: 1}},  // крыша
	{[4]int{0, 3, 2, 1}, geom.Vec3{Z: -1}}, // перед (к орудию)
	{[4]int{4, 5, 6, 7}, geom.Vec3{Z: 1}},  // корма
	{[4]int{0, 4, 7, 3}, geom.Vec3{X: -1}}, // левый борт
	{[4]int{1, 2, 6, 5}, geom.Vec3{X: 1}},  // правый борт
}

func boxCorners(b geom.AABB) [8]geom.Vec3 {
	return [8]geom.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// drawTarget рисует видимые грани коробки цели с отсечением задних.
func (r *SightRenderer) drawTarget(screen *ebiten.Image, s Scene, t *component.Target) {
	if !t.Spawned {
		return
	}
	if !r.projector.InSight(t.Center, s.Eye, s.Basis) {
		return
	}

	box := t.AABB()
	corners := boxCorners(box)
	var screenPts [8]sight.Offset
	for i, c := range corners {
		off, ok := r.projector.ProjectRaw(c, s.Eye, s.Basis)
		if !ok {
			return // угол за плоскостью отсечения — силуэт не рисуем
		}
		screenPts[i] = off
	}

	center := box.Min.Add(box.Max).Scale(0.5)
	for _, face := range boxFaces {
		faceCenter := center.Add(geom.V3(
			face.normal.X*(box.Max.X-box.Min.X)/2,
			face.normal.Y*(box.Max.Y-box.Min.Y)/2,
			face.normal.Z*(box.Max.Z-box.Min.Z)/2,
		))
		if face.normal.Dot(faceCenter.Sub(s.Eye)) >= 0 {
			continue // грань отвёрнута от наблюдателя
		}

		fill := r.faceColor(face.normal, t.Alive)
		path := vector.Path{}
		for j, idx := range face.idx {
			px := float32(r.cx + screenPts[idx].X)
			py := float32(r.cy + screenPts[idx].Y)
			if j == 0 {
				path.MoveTo(px, py)
			} else {
				path.LineTo(px, py)
			}
		}
		path.Close()
		r.fillPath(screen, path, fill)
		r.strokePath(screen, path, 1, r.dimIfDead(config.ColTankEdge, t.Alive))
	}
}

func (r *SightRenderer) faceColor(normal geom.Vec3, alive bool) color.RGBA {
	var c color.RGBA
	switch {
	case normal.Y > 0:
		c = config.ColTankTop
	case normal.X != 0:
		c = config.ColTankSide
	default:
		c = config.ColTankBody
	}
	return r.dimIfDead(c, alive)
}

// dimIfDead затемняет подбитую цель до обгоревшего силуэта.
func (r *SightRenderer) dimIfDead(c color.RGBA, alive bool) color.RGBA {
	if alive {
		return c
	}
	return color.RGBA{c.R / 3, c.G / 3, c.B / 3, c.A}
}

// drawTracer рисует хвост трассера: ломаная по прошлым позициям
// снаряда, гаснущая к хвосту.
func (r *SightRenderer) drawTracer(screen *ebiten.Image, s Scene, sh *component.Projectile) {
	pts := append(append([]geom.Vec3(nil), sh.Trail...), sh.Pos)
	var prev sight.Offset
	havePrev := false
	for i, p := range pts {
		off, ok := r.projector.Project(p, s.Eye, s.Basis)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			// Хвост тусклее головы
			frac := float64(i) / float64(len(pts))
			col := config.ColTracer
			if frac > 0.7 {
				col = config.ColTracerCore
			}
			width := float32(1 + frac*1.5)
			vector.StrokeLine(screen,
				float32(r.cx+prev.X), float32(r.cy+prev.Y),
				float32(r.cx+off.X), float32(r.cy+off.Y),
				width, col, false)
		}
		prev = off
		havePrev = true
	}
}

// drawExplosion рисует разрыв: растущий круг с угасанием, угловой
// размер падает с дальностью.
func (r *SightRenderer) drawExplosion(screen *ebiten.Image, s Scene, e *component.Explosion) {
	off, ok := r.projector.Project(e.Pos, s.Eye, s.Basis)
	if !ok {
		return
	}
	dist := e.Pos.Sub(s.Eye).Len()
	if dist < 1 {
		dist = 1
	}

	progress := 1 - e.Timer/e.MaxTime // 0 в момент разрыва, 1 в конце
	base := config.DustBaseRadius
	col := config.ColDust
	if e.IsHit {
		base = config.HitBaseRadius
		col = config.ColHit
	}
	// Быстрый рост в начале, затем плато
	growth := math.Min(1, progress*4)
	radiusM := base * growth * 0.2
	radiusPx := r.projector.PixelsPerRadian() * (radiusM / dist)
	if radiusPx < 2 {
		radiusPx = 2
	}

	fade := col
	fade.A = uint8(float64(col.A) * (1 - progress*0.7))
	vector.DrawFilledCircle(screen, float32(r.cx+off.X), float32(r.cy+off.Y), float32(radiusPx), fade, true)
}

// drawReticle рисует сетку: окантовка окуляра, перекрестие с разрывом
// в центре и центральная точка.
func (r *SightRenderer) drawReticle(screen *ebiten.Image) {
	cx := float32(r.cx)
	cy := float32(r.cy)
	rad := float32(r.radius)

	vector.StrokeCircle(screen, cx, cy, rad, 3, config.ColBlack, true)

	const gap = 14
	vector.StrokeLine(screen, cx-rad, cy, cx-gap, cy, 1.5, config.ColReticle, true)
	vector.StrokeLine(screen, cx+gap, cy, cx+rad, cy, 1.5, config.ColReticle, true)
	vector.StrokeLine(screen, cx, cy+gap, cx, cy+rad, 1.5, config.ColReticle, true)

	// Тысячные: риска каждые 5 мил по горизонтали и вниз по вертикали
	milStep := float32(r.projector.PixelsPerRadian() * 0.005)
	for k := 1; float32(k)*milStep < rad-4; k++ {
		d := float32(k) * milStep
		h := float32(3)
		if k%2 == 0 {
			h = 6
		}
		if d > gap {
			vector.StrokeLine(screen, cx-d, cy-h, cx-d, cy+h, 1, config.ColReticle, true)
			vector.StrokeLine(screen, cx+d, cy-h, cx+d, cy+h, 1, config.ColReticle, true)
			vector.StrokeLine(screen, cx-h, cy+d, cx+h, cy+d, 1, config.ColReticle, true)
		}
	}

	vector.DrawFilledCircle(screen, cx, cy, 1.5, config.ColReticle, true)
}

func (r *SightRenderer) fillPath(target *ebiten.Image, path vector.Path, c color.RGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	for i := range r.vs {
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	// Ненулевое правило заливки: встречный обход внутреннего контура
	// оставляет дыру (вырез окуляра в маске)
	target.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (r *SightRenderer) strokePath(target *ebiten.Image, path vector.Path, width float32, c color.RGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width: width,
	})
	for i := range r.vs {
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
