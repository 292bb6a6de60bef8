/*
Package ui holds the colors used for user-facing shell output.
*/
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like paths
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Prompt themes
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var promptThemes = map[string]*color.Color{
	ThemeDark:  color.New(color.FgCyan, color.Bold),
	ThemeLight: color.New(color.FgBlue, color.Bold),
}

// PromptText is the prompt shown before every interactive line.
const PromptText = "Dragon-shell> "

// ThemePromptColor returns the color func for a config theme. Unknown themes are uncolored.
func ThemePromptColor(theme string) func(a ...interface{}) string {
	if c, ok := promptThemes[theme]; ok {
		return c.SprintFunc()
	}
	return fmt.Sprint
}
