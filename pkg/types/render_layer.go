package types

// RenderLayer 渲染层级，在实体创建时确定，渲染时按层级顺序遍历
type RenderLayer int

const (
	// LayerWorld 敌机、子弹、头目、火球、弹球
	LayerWorld RenderLayer = iota
	// LayerPlayerGroup 玩家、僚机、无人机
	LayerPlayerGroup
	// LayerOverlay 技能选择按钮等界面元素
	LayerOverlay
)

// RenderLayers 按绘制顺序返回所有层级
func RenderLayers() []RenderLayer {
	return []RenderLayer{LayerWorld, LayerPlayerGroup, LayerOverlay}
}
