package cli

import "github.com/fatih/color"

var (
	primaryStyle = color.New(color.FgHiYellow).SprintFunc()
	errorStyle   = color.New(color.FgRed).SprintFunc()
	successStyle = color.New(color.FgGreen).SprintFunc()
	silentStyle  = color.New(color.FgHiBlack).SprintFunc()
)

func Primary(text string) string { return primaryStyle(text) }
func Error(text string) string   { return errorStyle(text) }
func Success(text string) string { return successStyle(text) }
func Silent(text string) string  { return silentStyle(text) }
