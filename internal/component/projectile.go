// internal/component/projectile.go
package component

import "go-tank-gunner/pkg/geom"

// Projectile представляет снаряд в полёте. Владеет им исключительно
// ProjectileSystem: после Spent снаряд удаляется и не переиспользуется.
type Projectile struct {
	Pos    geom.Vec3 // метры
	Vel    geom.Vec3 // м/с
	Origin geom.Vec3 // точка вылета, для проверки предела дальности
	Age    float64   // секунды с момента выстрела
	Spent  bool      // снят с учёта: попадание, земля, предел дальности/времени
	AmmoID string    // ID из ammo.json

	// След трассера: прошлые позиции с фиксированным интервалом
	Trail      []geom.Vec3
	TrailTimer float64
}
