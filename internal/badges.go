package internal

import "time"

// BadgeDefinition is a static achievement rule. Condition is evaluated
// against the profile's streak and session history.
type BadgeDefinition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Condition   func(streak int, sessions []SessionRecord) bool
}

func countByType(sessions []SessionRecord, t SessionType) int {
	n := 0
	for _, s := range sessions {
		if s.Type == t {
			n++
		}
	}
	return n
}

// BadgeDefinitions is the static achievement table.
var BadgeDefinitions = []BadgeDefinition{
	{
		ID:          "first_session",
		Name:        "Getting Started",
		Description: "Completed your first session",
		Icon:        "✨",
		Category:    "milestone",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return len(sessions) >= 1
		},
	},
	{
		ID:          "streak_3",
		Name:        "3-Day Streak",
		Description: "Maintained a 3-day streak",
		Icon:        "🔥",
		Category:    "streak",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return streak >= 3
		},
	},
	{
		ID:          "streak_7",
		Name:        "Week Warrior",
		Description: "Maintained a 7-day streak",
		Icon:        "🏆",
		Category:    "streak",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return streak >= 7
		},
	},
	{
		ID:          "streak_30",
		Name:        "Monthly Master",
		Description: "Maintained a 30-day streak",
		Icon:        "👑",
		Category:    "streak",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return streak >= 30
		},
	},
	{
		ID:          "sessions_10",
		Name:        "Dedicated User",
		Description: "Completed 10 sessions",
		Icon:        "🎯",
		Category:    "milestone",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return len(sessions) >= 10
		},
	},
	{
		ID:          "sessions_50",
		Name:        "Wellness Champion",
		Description: "Completed 50 sessions",
		Icon:        "🏅",
		Category:    "milestone",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return len(sessions) >= 50
		},
	},
	{
		ID:          "chat_explorer",
		Name:        "Chat Explorer",
		Description: "Had your first companion chat",
		Icon:        "💬",
		Category:    "achievement",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return countByType(sessions, SessionChat) >= 1
		},
	},
	{
		ID:          "mood_tracker",
		Name:        "Mood Tracker",
		Description: "Tracked your mood 5 times",
		Icon:        "❤️",
		Category:    "achievement",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return countByType(sessions, SessionMood) >= 5
		},
	},
	{
		ID:          "journal_writer",
		Name:        "Journal Writer",
		Description: "Wrote 5 journal entries",
		Icon:        "📖",
		Category:    "achievement",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return countByType(sessions, SessionJournal) >= 5
		},
	},
	{
		ID:          "breath_master",
		Name:        "Breath Master",
		Description: "Completed 10 breathing exercises",
		Icon:        "🌬",
		Category:    "achievement",
		Condition: func(streak int, sessions []SessionRecord) bool {
			return countByType(sessions, SessionBreathing) >= 10
		},
	},
}

// EvaluateBadges returns badges newly earned by the session history,
// excluding any already in unlocked. The caller persists the result.
func EvaluateBadges(sessions []SessionRecord, unlocked map[string]time.Time, now time.Time) []Badge {
	streak := Streak(sessions, now)

	var earned []Badge
	for _, def := range BadgeDefinitions {
		if _, ok := unlocked[def.ID]; ok {
			continue
		}
		if !def.Condition(streak, sessions) {
			continue
		}
		earned = append(earned, Badge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
			UnlockedAt:  now,
		})
	}

	return earned
}

// FindBadgeDefinition looks up a definition by id.
func FindBadgeDefinition(id string) (BadgeDefinition, bool) {
	for _, def := range BadgeDefinitions {
		if def.ID == id {
			return def, true
		}
	}
	return BadgeDefinition{}, false
}
