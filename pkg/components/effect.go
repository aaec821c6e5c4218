package components

import "image/color"

// ExplosionComponent 爆炸冲击波（纯视觉）
// 每步半径增大、透明度降低，透明度归零后销毁
type ExplosionComponent struct {
	Radius float64
	Alpha  float64 // 范围 [0, 1]
}

// ParticleComponent 爆炸碎片粒子（纯视觉）
// 速度存放在 VelocityComponent 中
type ParticleComponent struct {
	Life    int // 剩余寿命（步）
	MaxLife int
	Color   color.RGBA
}

// Alpha 返回按剩余寿命计算的透明度
func (p *ParticleComponent) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
