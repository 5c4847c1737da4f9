package intent

// Greeting opens every new session.
const Greeting = "Hello! I'm your campus information assistant. I can help you with schedules, facilities, dining, library services, and administrative procedures. How can I assist you today?"

var responseTemplates = map[Category]string{
	Schedules: "📅 **Today's Schedule:**\n\n" +
		"• 9:00 AM - Computer Science 101 (Room A204)\n" +
		"• 11:00 AM - Mathematics 205 (Room B305)\n" +
		"• 2:00 PM - Physics Lab (Lab C102)\n" +
		"• 4:00 PM - Study Group - Library Room 301\n\n" +
		"Would you like to see tomorrow's schedule or a specific course?",
	Dining: "🍽️ **Dining Information:**\n\n" +
		"• **Main Cafeteria**: 7:00 AM - 9:00 PM\n" +
		"• **Student Union Food Court**: 11:00 AM - 7:00 PM\n" +
		"• **Library Café**: 8:00 AM - 6:00 PM\n" +
		"• **24/7 Vending Machines**: Available in all residence halls\n\n" +
		"Today's special: Mediterranean Bowl at the Main Cafeteria!",
	Library: "📚 **Library Services:**\n\n" +
		"• **Hours**: Mon-Thu 8AM-12AM, Fri-Sat 8AM-8PM, Sun 12PM-12AM\n" +
		"• **Study Rooms**: Available for booking online\n" +
		"• **Computer Lab**: 24/7 access with student ID\n" +
		"• **Research Help**: Librarians available 9AM-5PM\n" +
		"• **Printing**: $0.10 per page, color printing available\n\n" +
		"Need help with research or booking a study room?",
	Facilities: "🗺️ **Campus Locations:**\n\n" +
		"• **Library**: Central Campus, Building C\n" +
		"• **Student Services**: Administration Building, 1st Floor\n" +
		"• **Dining Hall**: North Campus, Building D\n" +
		"• **Recreation Center**: South Campus\n" +
		"• **Parking**: Lots A, B, C (free with permit)\n\n" +
		"Need directions to a specific building or room?",
	Admin: "📋 **Administrative Services:**\n\n" +
		"• **Registration**: Online portal opens each semester\n" +
		"• **Student Services**: Mon-Fri 8:30AM-4:30PM\n" +
		"• **Financial Aid**: appointments available online\n" +
		"• **Academic Advising**: Schedule through student portal\n" +
		"• **IT Help Desk**: 24/7 support available\n\n" +
		"What specific administrative help do you need?",
	General: "I'd be happy to help! I can provide information about:\n\n" +
		"• 📅 **Schedules** - Class times, events, deadlines\n" +
		"• 🏢 **Facilities** - Building locations, room finder\n" +
		"• 🍽️ **Dining** - Hours, menus, locations\n" +
		"• 📚 **Library** - Hours, services, study spaces\n" +
		"• 📋 **Administrative** - Registration, contacts, procedures\n\n" +
		"What would you like to know more about?",
}

// Template returns the canned response for c, or the General one for an unknown category.
func Template(c Category) string {
	if text, ok := responseTemplates[c]; ok {
		return text
	}
	return responseTemplates[General]
}
