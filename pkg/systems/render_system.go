package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场景配色
var (
	colorBackground   = color.RGBA{R: 0x0c, G: 0x0a, B: 0x1f, A: 0xff}
	colorStar         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorFlame        = color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}
	colorGold         = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	colorPaleGold     = color.RGBA{R: 0xfe, G: 0xf0, B: 0x8a, A: 0xff}
	colorArcBlue      = color.RGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff}
	colorArcCore      = color.RGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 0xff}
	colorCrosshair    = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	colorSaucerEdge   = color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff}
	colorSaucerMid    = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	colorSaucerRim    = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	colorBossBody     = color.RGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}
	colorBossHead     = color.RGBA{R: 0x6d, G: 0x28, B: 0xd9, A: 0xff}
	colorShadow       = color.RGBA{A: 0x4c}
	colorDomeGlint    = color.RGBA{R: 0x4c, G: 0x4c, B: 0x4c, A: 0x4c}
	colorGauntletGlow = color.RGBA{R: 0x4b, G: 0x39, B: 0x0a, A: 0x4c}
)

// 无限宝石在护手上的位置（相对护手左上角）
var gauntletStones = []struct {
	dx, dy float64
	color  color.RGBA
}{
	{15, 10, color.RGBA{R: 0x93, G: 0x33, B: 0xea, A: 0xff}},
	{5, 20, color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}},
	{25, 20, color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}},
	{15, 30, color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}},
}

const (
	saucerLightCount = 5
	ellipseSegments  = 32
	glowAlpha        = 0.35
)

// RenderSystem 场景渲染系统
//
// 绘制顺序：背景 -> 星空 -> Boss -> Boss 能量弹 -> 爆炸 -> 粒子 -> 敌人 -> 子弹 -> 玩家 -> 准星。
// 渲染只读取世界状态，唯一的内部状态是单调递增的帧计数。
type RenderSystem struct {
	world *game.World
	frame int64

	// 填充路径用的纯白纹理，首次绘制时创建
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

// NewRenderSystem 创建场景渲染系统
func NewRenderSystem(world *game.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// Frame 返回已绘制的帧数
func (s *RenderSystem) Frame() int64 {
	return s.frame
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.frame++
	s.ensureWhiteImage()

	s.drawBackground(screen)

	em := s.world.EntityManager
	if s.world.BossID != 0 {
		s.drawBoss(screen)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.BossProjectileComponent, *components.PositionComponent](em) {
		bp, _ := ecs.GetComponent[*components.BossProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		drawGlowCircle(screen, pos.X, pos.Y, bp.Radius, 10, bp.Color)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ExplosionComponent, *components.PositionComponent](em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawExplosion(screen, pos.X, pos.Y, exp)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		fillCircle(screen, pos.X, pos.Y, 3, config.WithAlpha(p.Color, p.Alpha()))
	}
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		s.drawSaucer(screen, pos.X, pos.Y, enemy)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		drawGlowCircle(screen, pos.X, pos.Y, proj.Radius, 8, colorArcBlue)
		fillCircle(screen, pos.X, pos.Y, proj.Radius/2, colorArcCore)
	}

	s.drawAvatar(screen)
	drawCrosshair(screen, s.world.PointerX, s.world.PointerY)
}

func (s *RenderSystem) ensureWhiteImage() {
	if s.whiteImage != nil {
		return
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	s.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for i := 0; i < config.StarCount; i++ {
		x, y := StarPosition(i)
		vector.DrawFilledRect(screen, float32(x), float32(y), 2, 2, colorStar, false)
	}
}

// StarPosition 返回第 i 颗星星的位置
// 星空固定不动，位置由下标决定
func StarPosition(i int) (float64, float64) {
	return float64((i * 137) % config.GameWindowWidth), float64((i * 211) % config.GameWindowHeight)
}

// drawAvatar 绘制玩家角色：喷射火焰、腿、躯干、胸口能量灯、头盔、手臂和掌心炮
func (s *RenderSystem) drawAvatar(screen *ebiten.Image) {
	pos, avatar := s.world.Avatar()
	if pos == nil || avatar == nil {
		return
	}
	skin := s.world.State.Skin()
	x, y := pos.X, pos.Y

	flame := FlameLength(avatar.FlamePhase)
	for _, side := range []float64{-1, 1} {
		glowTriangle := []float64{x + side*15, y + 20, x + side*10, y + 20 + flame*1.3, x + side*5, y + 20}
		s.fillPolygon(screen, glowTriangle, config.WithAlpha(colorFlame, glowAlpha))
		s.fillPolygon(screen, []float64{x + side*15, y + 20, x + side*10, y + 20 + flame, x + side*5, y + 20}, colorFlame)
	}

	vector.DrawFilledRect(screen, float32(x-12), float32(y+15), 8, 15, skin.Primary, false)
	vector.DrawFilledRect(screen, float32(x+4), float32(y+15), 8, 15, skin.Primary, false)

	fillCircle(screen, x, y, 28, skin.Primary)
	s.fillArc(screen, x, y-5, 18, 18, 0, math.Pi, skin.Secondary)

	pulse := ChestPulse(s.frame)
	drawGlowCircle(screen, x, y, pulse, 10, colorArcBlue)
	fillCircle(screen, x, y, pulse-3, colorArcCore)

	fillCircle(screen, x, y-22, 16, skin.Primary)
	vector.DrawFilledRect(screen, float32(x-14), float32(y-26), 28, 12, skin.Secondary, false)
	vector.DrawFilledRect(screen, float32(x-13), float32(y-25), 10, 8, config.WithAlpha(colorArcBlue, glowAlpha), false)
	vector.DrawFilledRect(screen, float32(x+3), float32(y-25), 10, 8, config.WithAlpha(colorArcBlue, glowAlpha), false)
	vector.DrawFilledRect(screen, float32(x-12), float32(y-24), 8, 6, colorArcBlue, false)
	vector.DrawFilledRect(screen, float32(x+4), float32(y-24), 8, 6, colorArcBlue, false)

	// 左臂固定下垂，右臂指向瞄准方向，掌心炮位于子弹出膛点
	strokeRoundLine(screen, x-20, y, x-35, y+10, 10, skin.Primary)
	fillCircle(screen, x-35, y+10, 8, colorGauntletGlow)

	mx, my := MuzzlePoint(x, y, avatar.AimAngle, s.world.Tuning.Avatar.MuzzleDistance)
	strokeRoundLine(screen, x+20, y, mx, my, 10, skin.Primary)
	drawGlowCircle(screen, mx, my, 6, 8, colorGold)
	fillCircle(screen, mx, my, 3, colorPaleGold)
}

// FlameLength 喷射火焰长度，随相位在 [10, 20] 之间摆动
func FlameLength(phase float64) float64 {
	return 15 + math.Sin(phase)*5
}

// ChestPulse 胸口能量灯半径，随帧数在 [6, 10] 之间脉动
func ChestPulse(frame int64) float64 {
	return 8 + math.Sin(float64(frame)*0.1)*2
}

// MuzzlePoint 沿瞄准方向距角色中心 distance 处的点
func MuzzlePoint(x, y, angle, distance float64) (float64, float64) {
	return x + math.Cos(angle)*distance, y + math.Sin(angle)*distance
}

// drawSaucer 绘制飞碟：阴影、金属盘身、描边、波次颜色的舱罩、高光和 5 盏环绕灯
func (s *RenderSystem) drawSaucer(screen *ebiten.Image, x, y float64, enemy *components.EnemyComponent) {
	size := enemy.Size

	s.fillEllipse(screen, x, y+15, size*0.8, size*0.2, colorShadow)

	// 横向渐变用三段近似：两侧深灰，中间浅灰
	s.fillEllipse(screen, x, y, size, size*0.4, colorSaucerEdge)
	s.fillEllipse(screen, x, y, size*0.6, size*0.36, config.BlendColor(colorSaucerEdge, colorSaucerMid, 0.5))
	s.fillEllipse(screen, x, y, size*0.3, size*0.3, colorSaucerMid)
	s.strokeEllipse(screen, x, y, size, size*0.4, 3, colorSaucerRim)

	fillCircle(screen, x, y-10, size*0.5, enemy.Color)
	fillCircle(screen, x-5, y-15, size*0.2, colorDomeGlint)

	for _, light := range SaucerLights(x, y, size, s.frame) {
		drawGlowCircle(screen, light[0], light[1], 4, 5, enemy.Color)
	}
}

// SaucerLights 返回飞碟环绕灯的位置
// 灯沿椭圆 (0.7*size, 0.3*size) 均匀分布，每帧转动 0.1 弧度
func SaucerLights(x, y, size float64, frame int64) [saucerLightCount][2]float64 {
	var lights [saucerLightCount][2]float64
	t := float64(frame) * 0.1
	for i := range lights {
		angle := float64(i)/saucerLightCount*2*math.Pi + t
		lights[i] = [2]float64{x + math.Cos(angle)*size*0.7, y + math.Sin(angle)*size*0.3}
	}
	return lights
}

// drawBoss 绘制 Boss 及其头顶血条
func (s *RenderSystem) drawBoss(screen *ebiten.Image) {
	em := s.world.EntityManager
	boss, ok := s.world.Boss()
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.world.BossID)
	if !ok {
		return
	}
	x, y, size := pos.X, pos.Y, boss.Size

	fillCircle(screen, x, y, size, colorBossBody)
	s.fillArc(screen, x, y, size*0.7, size*0.7, math.Pi, 2*math.Pi, colorGold)
	fillCircle(screen, x, y-size*0.5, size*0.6, colorBossHead)

	for _, ex := range []float64{x - 20, x + 8} {
		vector.DrawFilledRect(screen, float32(ex-2), float32(y-size*0.6-2), 16, 12, config.WithAlpha(colorGold, glowAlpha), false)
		vector.DrawFilledRect(screen, float32(ex), float32(y-size*0.6), 12, 8, colorGold, false)
	}

	gx, gy := x-size-10, y+20
	vector.DrawFilledRect(screen, float32(gx), float32(gy), 30, 40, colorGold, false)
	for _, stone := range gauntletStones {
		drawGlowCircle(screen, gx+stone.dx, gy+stone.dy, 5, 5, stone.color)
	}

	// 头顶血条
	ratio := BossHealthRatio(boss.Health, boss.MaxHealth)
	barX, barY := x-size, y-size-20
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(size*2), 8, color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}, false)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(size*2*ratio), 8, colorCrosshair, false)
}

// BossHealthRatio Boss 剩余血量比例，限制在 [0, 1]
func BossHealthRatio(health, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 0
	}
	return min(max(float64(health)/float64(maxHealth), 0), 1)
}

// drawExplosion 外圈橙色冲击波，内圈金色核心，透明度随 Alpha 衰减
func (s *RenderSystem) drawExplosion(screen *ebiten.Image, x, y float64, exp *components.ExplosionComponent) {
	if exp.Radius <= 0 || exp.Alpha <= 0 {
		return
	}
	fillCircle(screen, x, y, exp.Radius+8, config.WithAlpha(colorFlame, exp.Alpha*glowAlpha))
	fillCircle(screen, x, y, exp.Radius, config.WithAlpha(colorFlame, exp.Alpha))
	fillCircle(screen, x, y, exp.Radius*0.6, config.WithAlpha(colorGold, exp.Alpha))
}

func drawCrosshair(screen *ebiten.Image, x, y float64) {
	vector.StrokeCircle(screen, float32(x), float32(y), 20, 4, config.WithAlpha(colorCrosshair, glowAlpha), true)
	vector.StrokeCircle(screen, float32(x), float32(y), 20, 2, colorCrosshair, true)
	for _, d := range [][4]float64{{-30, 0, -12, 0}, {30, 0, 12, 0}, {0, -30, 0, -12}, {0, 30, 0, 12}} {
		vector.StrokeLine(screen, float32(x+d[0]), float32(y+d[1]), float32(x+d[2]), float32(y+d[3]), 2, colorCrosshair, true)
	}
	fillCircle(screen, x, y, 2, colorCrosshair)
}

// ========== 绘制原语 ==========

func fillCircle(screen *ebiten.Image, x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)
}

// drawGlowCircle 实心圆外加一圈半透明光晕
func drawGlowCircle(screen *ebiten.Image, x, y, r, glow float64, c color.RGBA) {
	fillCircle(screen, x, y, r+glow, config.WithAlpha(c, glowAlpha*0.5))
	fillCircle(screen, x, y, r+glow/2, config.WithAlpha(c, glowAlpha))
	fillCircle(screen, x, y, r, c)
}

// strokeRoundLine 圆头线段
func strokeRoundLine(screen *ebiten.Image, x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
	fillCircle(screen, x0, y0, width/2, c)
	fillCircle(screen, x1, y1, width/2, c)
}

func (s *RenderSystem) fillEllipse(screen *ebiten.Image, cx, cy, rx, ry float64, c color.Color) {
	s.fillArc(screen, cx, cy, rx, ry, 0, 2*math.Pi, c)
}

// fillArc 填充椭圆扇形（from、to 为弧度，顺时针）
func (s *RenderSystem) fillArc(screen *ebiten.Image, cx, cy, rx, ry, from, to float64, c color.Color) {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	for i := 0; i <= ellipseSegments; i++ {
		a := from + (to-from)*float64(i)/ellipseSegments
		path.LineTo(float32(cx+math.Cos(a)*rx), float32(cy+math.Sin(a)*ry))
	}
	path.Close()
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawPath(screen, c)
}

func (s *RenderSystem) strokeEllipse(screen *ebiten.Image, cx, cy, rx, ry, width float64, c color.Color) {
	var path vector.Path
	for i := 0; i <= ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		px, py := float32(cx+math.Cos(a)*rx), float32(cy+math.Sin(a)*ry)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	s.drawPath(screen, c)
}

// fillPolygon 填充多边形，points 为 x0,y0,x1,y1,... 序列
func (s *RenderSystem) fillPolygon(screen *ebiten.Image, points []float64, c color.Color) {
	var path vector.Path
	for i := 0; i+1 < len(points); i += 2 {
		if i == 0 {
			path.MoveTo(float32(points[i]), float32(points[i+1]))
		} else {
			path.LineTo(float32(points[i]), float32(points[i+1]))
		}
	}
	path.Close()
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawPath(screen, c)
}

func (s *RenderSystem) drawPath(screen *ebiten.Image, c color.Color) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	// 顶点颜色使用非预乘值
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r) / float32(a)
		s.vertices[i].ColorG = float32(g) / float32(a)
		s.vertices[i].ColorB = float32(b) / float32(a)
		s.vertices[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(s.vertices, s.indices, s.whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
