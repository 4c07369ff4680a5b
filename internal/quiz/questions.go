package quiz

// PriorityAnswerKey is where the completed ordering lands in the
// answers map. It doubles as the rank question's id.
const PriorityAnswerKey = "priorities"

// PriorityOptions is the fixed pool for the stepped ranking question.
var PriorityOptions = []Option{
	{ID: "price", Label: "Maximizing price", Description: "Getting the most money from the sale"},
	{ID: "speed", Label: "Selling quickly", Description: "Closing as fast as possible"},
	{ID: "repairs", Label: "Avoiding repairs", Description: "Not having to fix anything"},
	{ID: "convenience", Label: "Avoiding hassle", Description: "No showings, paperwork, or negotiations"},
	{ID: "financial-freedom", Label: "Financial fresh start", Description: "Freeing up equity or simplifying monthly obligations"},
}

// RankingPrompts are shown per ranking step, in order.
var RankingPrompts = []string{
	"What's MOST important to you?",
	"What's next most important?",
	"And after that?",
	"What comes next?",
	"And finally...",
}

// Questions is the selling-plan questionnaire.
var Questions = []Question{
	{
		ID:     "timeline",
		Prompt: "How soon do you need to sell?",
		Type:   Single,
		Options: []Option{
			{ID: "very-fast", Label: "Very Fast", Description: "Less than 2 weeks"},
			{ID: "fast", Label: "Fast", Description: "Less than 30 days"},
			{ID: "quick", Label: "Quick", Description: "Less than 3 months"},
			{ID: "standard", Label: "Standard", Description: "4–6 months"},
			{ID: "no-hurry", Label: "No Hurry", Description: "More than 6 months is fine"},
		},
	},
	{
		ID:     "updates",
		Prompt: "Which best describes the level of updates your property has?",
		Type:   Single,
		Options: []Option{
			{ID: "top-market", Label: "Top-of-Market Updated", Description: "Updated within the last 2 years"},
			{ID: "semi-recent", Label: "Updated Semi-Recently", Description: "Updated within the last 10 years"},
			{ID: "nice-not-updated", Label: "Nice, but Not Updated"},
			{ID: "wear-tear", Label: "Not Updated, with Wear and Tear"},
			{ID: "dated", Label: "Dated", Description: "Needs cosmetic updates"},
		},
	},
	{
		ID:       "repairs",
		Prompt:   "Does the house need any repairs?",
		Subtitle: "Select all that apply",
		Type:     Multi,
		Options: []Option{
			{ID: "major-structural", Label: "Yes — Major structural issues", Description: "e.g., foundation repair"},
			{ID: "big-ticket", Label: "Yes — Big-ticket items", Description: "roof, AC/heating, plumbing leaks"},
			{ID: "non-loanable", Label: "Yes — Non-loanable items", Description: "exposed plumbing or electrical, missing flooring, etc."},
			{ID: "minor", Label: "Yes — Minor repairs or maintenance"},
			{ID: "none", Label: "No repairs needed", Exclusive: true},
		},
	},
	{
		ID:       "avoid",
		Prompt:   "Is there anything about selling your home that you're really trying to avoid?",
		Subtitle: "Select all that apply",
		Type:     Multi,
		Options: []Option{
			{ID: "showings", Label: "Showings"},
			{ID: "negotiations", Label: "Back-and-forth negotiations"},
			{ID: "time", Label: "Excessive time spent during the sales process"},
			{ID: "none", Label: "None of the above", Description: "I'm open to whatever gets me the best result", Exclusive: true},
		},
	},
	{
		ID:      PriorityAnswerKey,
		Prompt:  "What matters most to you?",
		Type:    Rank,
		Options: PriorityOptions,
	},
}
