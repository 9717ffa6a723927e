package colors

import "github.com/fatih/color"

// Terminal palette for the crawler's human-facing output. Color is stripped
// automatically when stdout is not a terminal.
var (
	SuccessC   = color.New(color.FgGreen)
	WarningC   = color.New(color.FgYellow)
	FailureC   = color.New(color.FgRed)
	UserInputC = color.New(color.FgCyan)
	FaintC     = color.New(color.Faint)
)

var (
	Success   = SuccessC.Sprint
	Warning   = WarningC.Sprint
	Failure   = FailureC.Sprint
	UserInput = UserInputC.Sprint
	Faint     = FaintC.Sprint
)
