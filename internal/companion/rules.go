package companion

import "fmt"

// DefaultTable is the built-in rule table, highest priority first. Adding
// a category is a data change; the classifier never needs to know about
// individual categories.
var DefaultTable = []Category{
	{
		Key:      "anxiety",
		Keywords: []string{"anxious", "anxiety", "worried", "panic", "nervous", "scared"},
		Mood:     MoodCaring,
		Templates: []string{
			"I can hear the anxiety in what you're sharing, {name}. Anxiety can feel so overwhelming, like your mind is racing with \"what ifs.\" What you're experiencing is your brain trying to protect you, even though it doesn't feel helpful right now. Can you tell me what specific thoughts are making you feel most anxious?",
			"{name}, anxiety has this way of making everything feel urgent and scary, doesn't it? I want you to know that what you're feeling is completely understandable. Sometimes it helps to focus on what's actually happening right now versus what our mind is telling us might happen. What's one thing you can see or feel around you right now?",
			"That sounds really intense, {name}. Anxiety can make our thoughts spiral so quickly. Have you noticed any patterns in when these anxious feelings tend to show up? Sometimes understanding our triggers can help us feel a bit more in control. You're being so brave by talking about this.",
		},
	},
	{
		Key:      "depression",
		Keywords: []string{"depressed", "depression", "sad", "hopeless", "empty", "worthless"},
		Mood:     MoodCaring,
		Templates: []string{
			"{name}, I can feel the heaviness in your words, and I want you to know that I'm here with you in this difficult moment. Depression can make everything feel so much harder. You showed incredible strength by reaching out and sharing this with me. What's been the hardest part of your day today?",
			"I hear you, {name}. Depression has this way of convincing us that things will never get better, but these feelings, as real and painful as they are, are not permanent. You matter, and your life has value even when it doesn't feel that way. Have you been able to do anything today, even something small, that brought you a tiny bit of comfort?",
			"Thank you for trusting me with something so personal, {name}. Depression can feel so isolating, like you're carrying this invisible weight that no one else can see. But you're not alone in this. What would you tell a dear friend who was going through exactly what you're experiencing right now?",
		},
	},
	{
		Key:      "anger",
		Keywords: []string{"angry", "mad", "frustrated", "furious", "annoyed"},
		Mood:     MoodThoughtful,
		Templates: []string{
			"I can sense the frustration and anger in what you're sharing, {name}. Anger often shows up when something important to us feels threatened or when we feel unheard. Your anger is valid. What do you think is underneath it? Sometimes there are other feelings hiding beneath.",
			"{name}, it sounds like you're really fired up about this, and I can understand why. Anger can be our mind's way of signaling that something isn't right. When you think about this situation, what feels most unfair or frustrating to you?",
			"That sounds incredibly frustrating, {name}. Anger often comes up when we feel powerless or when our boundaries have been crossed. You have every right to feel upset about this. What do you think would help you feel more in control of this situation?",
		},
	},
	{
		Key:      "positive",
		Keywords: []string{"happy", "excited", "good", "great", "amazing", "wonderful"},
		Mood:     MoodHappy,
		Templates: []string{
			"{name}, I can feel the positive energy in your message and it's absolutely wonderful! These good moments are so important to celebrate and remember. What's been contributing to these positive feelings?",
			"This is fantastic, {name}! I love hearing about the bright spots in your life. Positive emotions are just as important to explore as the difficult ones. What made this experience particularly special for you?",
			"{name}, your happiness is contagious! These positive experiences are like little treasures we can store up and remember during tougher times. How does it feel in your body when you experience this kind of joy?",
		},
	},
	{
		Key:      "stress",
		Keywords: []string{"stressed", "overwhelmed", "pressure", "busy", "exhausted"},
		Mood:     MoodCaring,
		Templates: []string{
			"{name}, it sounds like you're carrying a lot right now. Stress can feel like being pulled in a million different directions. Sometimes when everything feels urgent, it helps to step back and look at what's actually within our control. What feels like the biggest source of pressure for you right now?",
			"I hear how much you're juggling, {name}. Stress has this way of making everything feel like it needs to be done RIGHT NOW, which can be so exhausting. You're doing the best you can, and that's enough. What's one small thing you could do today to be kind to yourself?",
			"That sounds really overwhelming, {name}. If you could wave a magic wand and remove just one stressor from your life right now, what would it be? Sometimes identifying what's weighing on us most helps us figure out where to focus our energy.",
		},
	},
	{
		Key:      "loneliness",
		Keywords: []string{"lonely", "alone", "isolated", "disconnected"},
		Mood:     MoodCaring,
		Templates: []string{
			"{name}, loneliness can feel so heavy and isolating. Even though you might feel alone, you're not - I'm here with you right now. Loneliness doesn't mean there's something wrong with you; it's a very human signal that we need connection. What kind of connection do you find yourself missing most?",
			"I can feel the loneliness in your words, {name}, and reaching out here shows real courage. So many people struggle with feeling alone, even when it seems like everyone else has it figured out. What's one small way you might be able to reach out to someone today?",
			"{name}, loneliness can make us feel invisible, like we're on the outside looking in. But I see you, and I'm glad you're here sharing this with me. What would it feel like to have someone truly understand what you're going through right now?",
		},
	},
	{
		Key:      "gratitude",
		Keywords: []string{"thank", "thanks", "grateful", "appreciate"},
		Mood:     MoodHappy,
		Templates: []string{
			"{name}, your gratitude means the world to me. It's a privilege to be part of your journey and to witness your growth. How are you feeling about everything we've talked about?",
			"That really touches my heart, {name}. I'm so grateful for your openness and trust. What's been most helpful for you in our conversations?",
			"{name}, thank you for saying that. Remember, the strength and insights you've gained come from within you. I'm just here to help you see what was already there.",
		},
	},
}

// followUpTemplates reference the most recent topic from conversation
// history via the {topic} placeholder. Used when no category matches but
// recent context exists.
var followUpTemplates = []string{
	"{name}, I've been thinking about what you shared earlier about {topic}. How are you feeling about that now?",
	"It sounds like you're continuing to process what we talked about regarding {topic}. What new thoughts or feelings have come up for you?",
	"{name}, I'm glad you're continuing to explore this. Building on what you mentioned about {topic}, what's shifted for you since we last talked about it?",
}

// genericTemplates are the last-resort acknowledgments when neither a
// category nor recent context applies.
var genericTemplates = []string{
	"{name}, I'm really glad you shared that with me. I can sense there's a lot behind what you're saying. Can you help me understand what this means to you?",
	"That's really interesting, {name}. I appreciate you opening up about this. What's been on your mind about this situation?",
	"{name}, thank you for trusting me with your thoughts. I can tell this is important to you. What stands out most to you about what you're experiencing?",
	"I hear you, {name}. It sounds like you're processing something significant. What feels most important for you to talk about right now?",
}

// welcomeTemplates greet a user whose conversation history is empty.
var welcomeTemplates = []string{
	"Hi {name}! I'm Maya, your personal companion. I'm so glad you're here. I'm designed to be a supportive friend who listens without judgment and helps you navigate your thoughts and feelings. What brings you here today?",
	"Hello {name}! It's wonderful to meet you. I'm Maya, and I'm here to be your companion on this journey. Think of me as a friend who's always available to listen, support, and help you explore your thoughts. How are you feeling right now?",
	"Hey there, {name}! I'm Maya, your companion. I'm genuinely excited to get to know you and be part of your wellness journey. What's on your mind today?",
}

// topicRules is the fixed table the context tracker tests user messages
// against. Tag order decides nothing; topic order in a summary follows
// first occurrence in the window.
var topicRules = []TopicRule{
	{Tag: "work", Keywords: []string{"work", "job", "career"}},
	{Tag: "family", Keywords: []string{"family", "parents", "siblings"}},
	{Tag: "relationships", Keywords: []string{"relationship", "partner", "boyfriend", "girlfriend"}},
	{Tag: "education", Keywords: []string{"school", "college", "university", "studies"}},
	{Tag: "health", Keywords: []string{"health", "sick", "doctor", "medical"}},
}

// Sentiment lexicons. Matching is raw substring containment with no word
// boundaries, so "sadness" also hits "sad"; that matches the historical
// behavior and is relied on by callers only for the score's sign.
var (
	positiveWords = []string{"happy", "good", "great", "amazing", "wonderful", "excited", "joy", "love", "grateful", "thankful", "better", "improved"}
	negativeWords = []string{"sad", "angry", "frustrated", "anxious", "worried", "depressed", "terrible", "awful", "hate", "scared", "lonely", "hopeless"}
)

// ValidateTable checks a rule table for configuration errors. A broken
// table is a programming error and must fail at load time, never during
// a conversation.
func ValidateTable(table []Category) error {
	if len(table) == 0 {
		return fmt.Errorf("rule table is empty")
	}

	seen := make(map[string]bool, len(table))
	for i, cat := range table {
		if cat.Key == "" {
			return fmt.Errorf("category %d has no key", i)
		}
		if seen[cat.Key] {
			return fmt.Errorf("duplicate category key %q", cat.Key)
		}
		seen[cat.Key] = true

		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", cat.Key)
		}
		kw := make(map[string]bool, len(cat.Keywords))
		for _, k := range cat.Keywords {
			if k == "" {
				return fmt.Errorf("category %q has an empty keyword", cat.Key)
			}
			if kw[k] {
				return fmt.Errorf("category %q has duplicate keyword %q", cat.Key, k)
			}
			kw[k] = true
		}

		if len(cat.Templates) < 2 {
			return fmt.Errorf("category %q needs at least 2 templates, has %d", cat.Key, len(cat.Templates))
		}
		for j, tmpl := range cat.Templates {
			if tmpl == "" {
				return fmt.Errorf("category %q template %d is empty", cat.Key, j)
			}
		}

		switch cat.Mood {
		case MoodHappy, MoodCaring, MoodThoughtful, MoodNeutral:
		default:
			return fmt.Errorf("category %q has unknown mood %q", cat.Key, cat.Mood)
		}
	}

	return nil
}
