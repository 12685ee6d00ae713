package mode

// Mode is what the editor is doing with key presses, shown in the status
// bar.
type Mode struct {
	StatusMessage string
}

var (
	EditMode   Mode = Mode{StatusMessage: "-- EDIT --"}
	SelectMode      = Mode{StatusMessage: "-- SELECT --"}
	PromptMode      = Mode{StatusMessage: "-- PROMPT --"}
)
