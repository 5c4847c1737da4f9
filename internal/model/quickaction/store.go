package quickaction

import "github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"

// Store 快捷操作的只读数据源
type Store interface {
	List() []Action
	ByCategory(category intent.Category) []Action
	FindByID(id string) (Action, bool)
}

// MemoryStore 固定的快捷操作列表，启动后不再变化
type MemoryStore struct {
	items []Action
}

func NewMemoryStore(items []Action) *MemoryStore {
	return &MemoryStore{items: append([]Action(nil), items...)}
}

// List 按输入框上方的展示顺序返回副本
func (s *MemoryStore) List() []Action {
	return append([]Action(nil), s.items...)
}

// ByCategory 按展示提示筛选，顺序与 List 一致
func (s *MemoryStore) ByCategory(category intent.Category) []Action {
	matched := make([]Action, 0, len(s.items))
	for _, item := range s.items {
		if item.Category == category {
			matched = append(matched, item)
		}
	}
	return matched
}

func (s *MemoryStore) FindByID(id string) (Action, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Action{}, false
}
