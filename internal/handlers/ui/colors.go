package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	SuccessColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the run ID
)
