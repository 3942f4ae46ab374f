package wellness

// Presentation lookups for risk levels. These live apart from the
// classification logic so the core carries no formatting or locale coupling.

var displayLabels = map[RiskLevel]string{
	RiskHigh:     "🔴 High burnout risk",
	RiskModerate: "🟡 Moderate burnout risk",
	RiskBalanced: "🟢 Balanced",
}

var suggestions = map[RiskLevel]string{
	RiskHigh:     "High burnout risk. Step away from work today: rest properly, sleep early, and hand off whatever can wait.",
	RiskModerate: "You're running a bit hot. Take a short break, stretch, and get some water before your next task.",
	RiskBalanced: "You're keeping a healthy balance. Keep pacing yourself the way you are.",
}

// DisplayLabel returns the glyph-decorated status label for a risk level.
func DisplayLabel(level RiskLevel) string {
	return displayLabels[level]
}

// Suggestion returns the human-readable recommendation for a risk level.
func Suggestion(level RiskLevel) string {
	return suggestions[level]
}
