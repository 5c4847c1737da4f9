package quickaction

import "github.com/zhouzirui/campus-assistant/backend/internal/analysis/intent"

// Action is a one-tap shortcut that submits a canned query on the user's behalf.
type Action struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Category intent.Category `json:"category"` // 展示用的提示，不参与分类
	Query    string          `json:"query"`
}

// Seed provides the shortcuts shown above the chat input.
func Seed() []Action {
	return []Action{
		{ID: "class-schedule", Label: "Class Schedule", Category: intent.Schedules, Query: "Show me today's class schedule"},
		{ID: "campus-map", Label: "Campus Map", Category: intent.Facilities, Query: "Where is the library located?"},
		{ID: "dining-hours", Label: "Dining Hours", Category: intent.Dining, Query: "What are the dining hall hours today?"},
		{ID: "library-services", Label: "Library Services", Category: intent.Library, Query: "What library services are available?"},
		{ID: "registration", Label: "Registration", Category: intent.Admin, Query: "How do I register for classes?"},
		{ID: "contact-info", Label: "Contact Info", Category: intent.Admin, Query: "What are the important campus contact numbers?"},
	}
}
