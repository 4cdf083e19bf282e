package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// SetupPrefixes applies the message prefixes used across the app.
func SetupPrefixes() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}
}

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// PrintMenuHeader prints the "===== CampusPay CLI =====" banner, with the
// current user and balance when someone is logged in.
func PrintMenuHeader(username, balance string) {
	pterm.Println()
	PrintL1Title("CampusPay CLI")
	if username != "" {
		PrintL2Title("User: %s | Balance: %s", username, balance)
	}
}
