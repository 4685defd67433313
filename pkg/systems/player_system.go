package systems

import (
	"log"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
)

// PlayerSystem 玩家控制器
//
// 职责：
//   - 根据输入水平移动，限制在屏幕内
//   - 按射击间隔自动开火，并把超出上限的火力分配给僚机
//   - 推进无敌/闪烁计时，处理分裂射击到期
//   - 按编队表重算僚机位置
//   - 提供升级、受伤、加命、加僚机以及各技能的激活操作
type PlayerSystem struct{}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Update 每帧更新玩家
func (s *PlayerSystem) Update(w *game.GameWorld, input game.InputState) {
	p, ok := w.Player()
	if !ok {
		return
	}
	em := w.EntityManager
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, w.PlayerID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, w.PlayerID)
	screenW := w.Config.Screen.Width

	if input.MoveLeft && col.Left(pos) > 0 {
		pos.X -= p.Speed
	}
	if input.MoveRight && col.Right(pos) < screenW {
		pos.X += p.Speed
	}
	pos.X = clamp(pos.X, col.Width/2, screenW-col.Width/2)

	s.Shoot(w)
	s.updateInvincibility(w, p)

	if p.HasSplitShot && w.Now > p.SplitShotEndTime {
		p.HasSplitShot = false
		log.Printf("[PlayerSystem] Split shot expired at %dms", w.Now)
	}

	s.UpdateFormation(w)
}

// Shoot 射击间隔已过时开火，返回是否开火
//
// 玩家本身最多发射 MaxBulletsPerShot 发（分裂射击时每发再附带两颗斜向子弹），
// 超出部分 weaponLevel-MaxBulletsPerShot 平均分给僚机，余数按僚机顺序各加一发。
func (s *PlayerSystem) Shoot(w *game.GameWorld) bool {
	p, ok := w.Player()
	if !ok {
		return false
	}
	if w.Now-p.LastShot <= p.ShootDelay {
		return false
	}

	cfg := w.Config
	em := w.EntityManager
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, w.PlayerID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, w.PlayerID)
	top := col.Top(pos)

	count := min(p.WeaponLevel, cfg.Player.MaxBulletsPerShot)
	for _, offset := range cfg.PlayerBulletOffsets(count) {
		x := pos.X + offset
		entities.NewBullet(w, entities.BulletParams{
			X:                 x,
			Edge:              top,
			Speed:             cfg.Player.BulletSpeed,
			IsElectromagnetic: p.HasElectromagneticWave,
			Source:            components.BulletFromPlayer,
		})
		if p.HasSplitShot {
			entities.NewBullet(w, entities.BulletParams{
				X:                 x - cfg.Player.SplitSpread,
				Edge:              top,
				Speed:             cfg.Player.SplitBulletSpeed,
				Angle:             -cfg.Player.SplitAngle,
				IsElectromagnetic: p.HasElectromagneticWave,
				Source:            components.BulletFromPlayer,
			})
			entities.NewBullet(w, entities.BulletParams{
				X:                 x + cfg.Player.SplitSpread,
				Edge:              top,
				Speed:             cfg.Player.SplitBulletSpeed,
				Angle:             cfg.Player.SplitAngle,
				IsElectromagnetic: p.HasElectromagneticWave,
				Source:            components.BulletFromPlayer,
			})
		}
	}

	p.LastShot = w.Now

	excess := max(0, p.WeaponLevel-cfg.Player.MaxBulletsPerShot)
	allocation := DistributeFirepower(excess, len(p.Wingmen))
	for i, wingmanID := range p.Wingmen {
		if allocation[i] > 0 {
			s.fireWingman(w, p, wingmanID, allocation[i])
		}
	}
	return true
}

// fireWingman 僚机按分配数量查表开火
func (s *PlayerSystem) fireWingman(w *game.GameWorld, p *components.PlayerComponent, id ecs.EntityID, count int) {
	em := w.EntityManager
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || !em.IsAlive(id) {
		return
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

	for _, offset := range w.Config.WingmanBulletOffsets(count) {
		entities.NewBullet(w, entities.BulletParams{
			X:                 pos.X + offset,
			Edge:              col.Top(pos),
			Speed:             w.Config.Player.BulletSpeed,
			IsElectromagnetic: p.HasElectromagneticWave,
			Source:            components.BulletFromWingman,
		})
	}
}

// DistributeFirepower 把 excess 发火力分给 wingmen 个僚机
// 每个僚机得到 excess/wingmen 发，前 excess%wingmen 个僚机各多一发
func DistributeFirepower(excess, wingmen int) []int {
	if wingmen <= 0 {
		return nil
	}
	allocation := make([]int, wingmen)
	if excess <= 0 {
		return allocation
	}
	base := excess / wingmen
	remainder := excess % wingmen
	for i := range allocation {
		allocation[i] = base
		if i < remainder {
			allocation[i]++
		}
	}
	return allocation
}

// updateInvincibility 推进无敌计时与闪烁
func (s *PlayerSystem) updateInvincibility(w *game.GameWorld, p *components.PlayerComponent) {
	cfg := w.Config.Player
	if p.IsInvincible {
		if w.Now-p.InvincibleStartTime > cfg.InvincibleTime {
			p.IsInvincible = false
			p.IsVisible = true
		} else if w.Now-p.LastFlashTime > cfg.FlashInterval {
			p.IsVisible = !p.IsVisible
			p.LastFlashTime = w.Now
		}
	}

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](w.EntityManager, w.PlayerID); ok {
		sprite.Visible = p.IsVisible
	}
}

// UpdateFormation 按当前僚机数量查编队表，重算每个僚机的位置
func (s *PlayerSystem) UpdateFormation(w *game.GameWorld) {
	p, ok := w.Player()
	if !ok {
		return
	}
	em := w.EntityManager
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](em, w.PlayerID)

	slots := w.Config.WingmanFormation(len(p.Wingmen))
	for i, id := range p.Wingmen {
		if i >= len(slots) {
			break
		}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			pos.X = playerPos.X + slots[i].X
			pos.Y = playerPos.Y + slots[i].Y
		}
	}
}

// UpgradeWeapon 武器升级：等级加一（不超过上限），射击间隔减少一档（不低于下限）
func (s *PlayerSystem) UpgradeWeapon(w *game.GameWorld) {
	p, ok := w.Player()
	if !ok {
		return
	}
	cfg := w.Config.Player
	if p.WeaponLevel < cfg.MaxWeaponLevel {
		p.WeaponLevel++
		p.ShootDelay = max(cfg.MinShootDelay, p.ShootDelay-cfg.ShootDelayStep)
		log.Printf("[PlayerSystem] Weapon upgraded to level %d (shoot delay %dms)", p.WeaponLevel, p.ShootDelay)
	}
}

// TakeDamage 受到一次伤害
// 无敌时不生效并返回 false；否则扣一条命、进入无敌并返回 true
func (s *PlayerSystem) TakeDamage(w *game.GameWorld) bool {
	p, ok := w.Player()
	if !ok || p.IsInvincible {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.IsInvincible = true
	p.InvincibleStartTime = w.Now
	log.Printf("[PlayerSystem] Player hit, lives left: %d", p.Lives)
	return true
}

// AddLife 增加一条命
func (s *PlayerSystem) AddLife(w *game.GameWorld) {
	if p, ok := w.Player(); ok {
		p.Lives++
	}
}

// AddWingman 增加一个僚机，达到上限时返回 false
func (s *PlayerSystem) AddWingman(w *game.GameWorld) bool {
	p, ok := w.Player()
	if !ok || len(p.Wingmen) >= w.Config.Player.MaxWingmen {
		return false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.PlayerID)
	id := entities.NewWingman(w, pos.X, pos.Y)
	p.Wingmen = append(p.Wingmen, id)
	log.Printf("[PlayerSystem] Wingman %d joined (%d total)", id, len(p.Wingmen))
	return true
}

// ActivateShield 护盾：立即无敌，持续 ShieldDuration
// 与受击无敌共用计时器，通过把起始时间后移使总时长变为 ShieldDuration
func (s *PlayerSystem) ActivateShield(w *game.GameWorld) {
	p, ok := w.Player()
	if !ok {
		return
	}
	cfg := w.Config.Player
	p.IsInvincible = true
	p.InvincibleStartTime = w.Now - (cfg.InvincibleTime - cfg.ShieldDuration)
}

// ActivateSplitShot 分裂射击，持续 SplitShotDuration
func (s *PlayerSystem) ActivateSplitShot(w *game.GameWorld) {
	p, ok := w.Player()
	if !ok {
		return
	}
	p.HasSplitShot = true
	p.SplitShotEndTime = w.Now + w.Config.Player.SplitShotDuration
}

// ActivateDrone 生成一批无人机（每批数量固定），各自随机初始角度
func (s *PlayerSystem) ActivateDrone(w *game.GameWorld) {
	p, ok := w.Player()
	if !ok {
		return
	}
	for i := 0; i < w.Config.Drone.Count; i++ {
		p.Drones = append(p.Drones, entities.NewDrone(w, w.PlayerID))
	}
	log.Printf("[PlayerSystem] Drones activated (%d total)", len(p.Drones))
}

// ActivateElectromagneticWave 电磁波：之后发射的玩家与僚机子弹都带连锁闪电标记，永久有效
func (s *PlayerSystem) ActivateElectromagneticWave(w *game.GameWorld) {
	if p, ok := w.Player(); ok {
		p.HasElectromagneticWave = true
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
