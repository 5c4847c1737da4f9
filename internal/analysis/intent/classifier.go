package intent

import "strings"

// Category 表示助手可以回答的话题。
type Category string

const (
	Schedules  Category = "schedules"
	Dining     Category = "dining"
	Library    Category = "library"
	Facilities Category = "facilities"
	Admin      Category = "admin"
	General    Category = "general"
)

// Decision 给出分类结果以及对应的回复模板。
type Decision struct {
	Category Category
	Keyword  string
	Response string
}

type rule struct {
	category Category
	keywords []string
}

// rules are evaluated in order and the first match wins.
var rules = []rule{
	{category: Schedules, keywords: []string{"schedule", "class"}},
	{category: Dining, keywords: []string{"dining", "food", "cafeteria"}},
	{category: Library, keywords: []string{"library"}},
	{category: Facilities, keywords: []string{"map", "location", "where"}},
	{category: Admin, keywords: []string{"register", "enrollment", "admin"}},
}

// Classify 根据关键词把用户话语映射到话题，未命中时回退到 General。
func Classify(utterance string) Decision {
	normalized := strings.ToLower(utterance)

	for _, r := range rules {
		for _, word := range r.keywords {
			if strings.Contains(normalized, word) {
				return Decision{Category: r.category, Keyword: word, Response: Template(r.category)}
			}
		}
	}

	return Decision{Category: General, Response: Template(General)}
}

// Categories returns every category in priority order, General last.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, General)
}

// Valid reports whether c belongs to the classifier's category set.
func (c Category) Valid() bool {
	if c == General {
		return true
	}
	for _, r := range rules {
		if r.category == c {
			return true
		}
	}
	return false
}

// Parse 将字符串解析为分类，忽略大小写与首尾空白。
func Parse(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}
