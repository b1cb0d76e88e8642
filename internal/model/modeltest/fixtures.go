// Package modeltest provides well-formed content units for tests. Each
// builder returns a fresh value so tests can break one field at a time.
package modeltest

import "github.com/pthm/scenariolint/internal/model"

// CurrentUnit returns a current-generation unit that passes every check.
func CurrentUnit() model.ContentUnit {
	return model.ContentUnit{
		ID:       "social-1",
		Category: "Social",
		Topic:    "Meeting a new neighbour",
		Dialogue: []model.DialogueLine{
			{Speaker: "Sam", Text: "Hi! Nice to ________ you."},
			{Speaker: "Alex", Text: "Good to meet you too. I just ________ in next door."},
			{Speaker: "Sam", Text: "Let me know if you ________ anything."},
		},
		Answers: []model.AnswerVariation{
			{Blank: 1, Answer: "meet", Alternatives: []string{"see"}},
			{Blank: 2, Answer: "moved", Alternatives: []string{"settled"}},
			{Blank: 3, Answer: "need", Alternatives: []string{"want"}},
		},
		ChunkFeedback: []model.ChunkFeedback{
			chunk("nice-to-meet-you", "Nice to meet you", "Openers", "Nice to meet you, I'm Sam."),
			chunk("just-moved-in", "I just moved in", "Openers", "We just moved in last week."),
			chunk("let-me-know", "Let me know if you need anything", "Closers", "Let me know if you need a hand."),
		},
		BlankMappings: []model.BlankMapping{
			{Blank: 1, ChunkID: "nice-to-meet-you"},
			{Blank: 2, ChunkID: "just-moved-in"},
			{Blank: 3, ChunkID: "let-me-know"},
		},
		PatternSummary: &model.PatternSummary{
			CategoryBreakdown: []model.CategoryBreakdown{
				{
					Category: "Openers",
					Count:    2,
					Examples: []string{"nice-to-meet-you", "just-moved-in"},
					Insight:  "Openers set a warm tone before any real news is shared.",
				},
				{
					Category: "Closers",
					Count:    1,
					Examples: []string{"let-me-know"},
					Insight:  "Closers leave room for the next conversation to happen.",
				},
			},
			OverallInsight: "Neighbours build rapport quickly when they open with a warm fixed phrase, share a small piece of news and finish with a general offer of help.",
			KeyPatterns: []model.KeyPattern{
				{
					Pattern:     "Warm first contact",
					Explanation: "Start with a friendly fixed phrase so the other person relaxes before you share any news.",
					Chunks:      []string{"nice-to-meet-you", "just-moved-in"},
				},
				{
					Pattern:     "Leaving the door open",
					Explanation: "Finish by offering help in a general way so the relationship can continue naturally.",
					Chunks:      []string{"let-me-know"},
				},
			},
		},
		ActiveRecall: []model.ActiveRecallItem{
			{Prompt: "How do you greet a new neighbour?", TargetChunks: []string{"nice-to-meet-you"}},
		},
	}
}

// LegacyUnit returns a legacy-generation unit that passes every check.
func LegacyUnit() model.ContentUnit {
	return model.ContentUnit{
		ID:       "workplace-1",
		Category: "Workplace",
		Topic:    "Asking a colleague for help",
		Dialogue: []model.DialogueLine{
			{Speaker: "Priya", Text: "Could you ________ me a hand with this report?"},
			{Speaker: "Tom", Text: "Sure, send it over after lunch."},
		},
		Answers: []model.AnswerVariation{
			{Blank: 1, Answer: "give", Alternatives: []string{"lend"}},
		},
		Feedback: []model.LegacyFeedback{
			{
				Blank:    1,
				Chunk:    "give me a hand",
				Category: "Softening",
				Note:     "A relaxed way to ask for help without sounding demanding.",
				Situations: []string{
					"Asking a teammate to review a draft",
					"Moving furniture with a friend",
					"Setting up a room before a meeting",
				},
				UsageNotes: []string{
					"Works with colleagues and friends",
					"Often follows could you or can you",
					"Sounds friendlier than asking for assistance",
				},
				Contrast: []model.ContrastPair{
					{NonNative: "Can you help me for this report?", Native: "Could you give me a hand with this report?", Explanation: "The fixed phrase sounds lighter."},
					{NonNative: "Please assist me.", Native: "Can you give me a hand?", Explanation: "Assist is too stiff between coworkers."},
				},
			},
		},
	}
}

func chunk(id, text, category, example string) model.ChunkFeedback {
	return model.ChunkFeedback{
		ChunkID:  id,
		Chunk:    text,
		Category: category,
		Explanation: model.Explanation{
			Meaning:       "What the phrase communicates to the listener.",
			Usage:         "Use it in friendly first conversations.",
			CommonMistake: "Learners often translate word for word.",
			Fix:           "Use the whole phrase as one unit.",
			Why:           "Fixed phrases sound fluent and relaxed.",
		},
		Examples: []string{example},
	}
}
