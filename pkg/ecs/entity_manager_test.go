package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且单调递增
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射 API 必须共享同一份存储
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found || comp.(*testPositionComponent) != pos {
		t.Error("Reflection API should see the component added through the generic API")
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
	if _, ok := GetComponent[*testPositionComponent](em, EntityID(999)); ok {
		t.Error("Unknown entity should not have components")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testTagComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testTagComponent{})
	if !HasComponent[*testTagComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testTagComponent](em, id)
	if HasComponent[*testTagComponent](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	// 标记删除（重复标记不应产生副作用）
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}
	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Mark should be cleared after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}

	none := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
	if len(none) != 0 {
		t.Errorf("Expected no entity with all three components, got %v", none)
	}
}

func TestGetEntitiesWith_CreationOrder(t *testing.T) {
	em := NewEntityManager()

	var created []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		created = append(created, id)
	}

	// 多次查询结果必须稳定且按创建顺序排列
	for round := 0; round < 5; round++ {
		got := GetEntitiesWith1[*testPositionComponent](em)
		if len(got) != len(created) {
			t.Fatalf("Expected %d entities, got %d", len(created), len(got))
		}
		for i := range got {
			if got[i] != created[i] {
				t.Fatalf("round %d: index %d expected %d, got %d", round, i, created[i], got[i])
			}
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id2, &testPositionComponent{})
	AddComponent(em, id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	remaining := GetEntitiesWith1[*testPositionComponent](em)
	if len(remaining) != 1 || remaining[0] != id2 {
		t.Errorf("Expected only id2 to remain, got %v", remaining)
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	first := em.CreateEntity()
	AddComponent(em, first, &testPositionComponent{})
	em.DestroyEntity(first)

	em.Clear()
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities after Clear, got %d", em.EntityCount())
	}
	if em.IsMarkedForDestroy(first) {
		t.Error("Pending destroy list should be cleared")
	}

	// ID 不重复使用
	if next := em.CreateEntity(); next <= first {
		t.Errorf("IDs must not be reused after Clear, got %d after %d", next, first)
	}
}
