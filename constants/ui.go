package constants

import "time"

// UI Timing Constants
const (
	// AchievementDisplayDuration is how long the achievement popup stays visible
	AchievementDisplayDuration = 2 * time.Second

	// ClickEffectDuration is how long the "+1" effect floats above the button
	ClickEffectDuration = 1 * time.Second

	// ButtonPressDuration is how long the button is drawn pressed after an activation
	ButtonPressDuration = 100 * time.Millisecond
)

// UI Layout Constants
const (
	// HighlightedMilestones is how many leading thresholds the milestone row highlights
	HighlightedMilestones = 3

	// ButtonWidth and ButtonHeight size the activation button in cells
	ButtonWidth  = 24
	ButtonHeight = 7

	// ProgressBarWidth is the width of the progress bar in cells
	ProgressBarWidth = 40

	// Title is the heading drawn above the button
	Title = "PUMP CLICKER"
)
