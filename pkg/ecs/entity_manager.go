package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// GroupName 命名索引集合，例如 "enemies"、"player_bullets"
// 组成员关系在实体创建时登记、销毁时移除，不通过组件类型推断
type GroupName string

// EntityManager 按 ID 持有所有实体，并维护命名索引集合
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 组 -> 成员集合
	groups map[GroupName]map[EntityID]struct{}
	// 实体 -> 所属组，销毁时用于反向移除
	memberships map[EntityID][]GroupName
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 已标记删除但组件尚未清理的实体
	pending map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		groups:            make(map[GroupName]map[EntityID]struct{}),
		memberships:       make(map[EntityID][]GroupName),
		entitiesToDestroy: make([]EntityID, 0),
		pending:           make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, dying := em.pending[id]
	return !dying
}

// DestroyEntity 标记实体待删除
// 组成员关系立即移除，组件在 RemoveMarkedEntities 时清理
// 重复销毁同一实体是安全的
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsAlive(id) {
		return
	}
	for _, g := range em.memberships[id] {
		delete(em.groups[g], id)
	}
	delete(em.memberships, id)
	em.pending[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// DestroyAll 标记所有存活实体待删除
func (em *EntityManager) DestroyAll() {
	for _, id := range em.AllEntities() {
		em.DestroyEntity(id)
	}
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 每帧末尾调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.pending, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// AddToGroup 将实体登记到一个或多个命名集合
func (em *EntityManager) AddToGroup(id EntityID, groups ...GroupName) {
	if !em.IsAlive(id) {
		return
	}
	for _, g := range groups {
		members, ok := em.groups[g]
		if !ok {
			members = make(map[EntityID]struct{})
			em.groups[g] = members
		}
		if _, already := members[id]; already {
			continue
		}
		members[id] = struct{}{}
		em.memberships[id] = append(em.memberships[id], g)
	}
}

// RemoveFromGroup 将实体移出命名集合（实体本身保留）
func (em *EntityManager) RemoveFromGroup(id EntityID, group GroupName) {
	members, ok := em.groups[group]
	if !ok {
		return
	}
	if _, in := members[id]; !in {
		return
	}
	delete(members, id)
	gs := em.memberships[id]
	for i, g := range gs {
		if g == group {
			em.memberships[id] = append(gs[:i], gs[i+1:]...)
			break
		}
	}
}

// InGroup 实体是否属于集合
func (em *EntityManager) InGroup(id EntityID, group GroupName) bool {
	_, ok := em.groups[group][id]
	return ok
}

// Group 返回集合中的实体，按创建顺序（ID 升序）排列
func (em *EntityManager) Group(group GroupName) []EntityID {
	members := em.groups[group]
	result := make([]EntityID, 0, len(members))
	for id := range members {
		result = append(result, id)
	}
	sortIDs(result)
	return result
}

// GroupSize 集合成员数量
func (em *EntityManager) GroupSize(group GroupName) int {
	return len(em.groups[group])
}

// AllEntities 返回所有存活实体，按 ID 升序
func (em *EntityManager) AllEntities() []EntityID {
	result := make([]EntityID, 0, len(em.components))
	for id := range em.components {
		if em.IsAlive(id) {
			result = append(result, id)
		}
	}
	sortIDs(result)
	return result
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有存活实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（ID 升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if _, dying := em.pending[id]; dying {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortIDs(result)
	return result
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
