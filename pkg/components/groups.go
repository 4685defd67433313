package components

import "github.com/decker502/bullethell/pkg/ecs"

// 命名索引集合
// 实体工厂在创建时登记，销毁时由 EntityManager 自动移除
const (
	GroupPlayer        ecs.GroupName = "player"
	GroupEnemies       ecs.GroupName = "enemies"
	GroupPlayerBullets ecs.GroupName = "player_bullets" // 玩家与僚机的子弹
	GroupDroneBullets  ecs.GroupName = "drone_bullets"
	GroupBossBullets   ecs.GroupName = "boss_bullets"
	GroupBoss          ecs.GroupName = "boss"
	GroupWingmen       ecs.GroupName = "wingmen"
	GroupDrones        ecs.GroupName = "drones"
	GroupFireballs     ecs.GroupName = "fireballs"
	GroupBouncingBalls ecs.GroupName = "bouncing_balls"
	GroupSkillButtons  ecs.GroupName = "skill_buttons"
)
