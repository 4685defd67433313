package ecs

import "testing"

// setupBenchmarkEntities 创建指定数量的实体并登记到组
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i), Y: float64(i)})
		if i%2 == 0 {
			em.AddToGroup(id, testGroupEnemies)
		} else {
			em.AddToGroup(id, testGroupBullets)
		}
	}
	return em
}

func BenchmarkGroup(b *testing.B) {
	em := setupBenchmarkEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.Group(testGroupEnemies)
	}
}

func BenchmarkGetEntitiesWith1(b *testing.B) {
	em := setupBenchmarkEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith1[*testPositionComponent](em)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*testPositionComponent](em, EntityID(i%500+1))
	}
}
