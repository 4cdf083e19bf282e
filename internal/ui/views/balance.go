package views

import "github.com/pterm/pterm"

func RenderBalance(username, balance string) {
	pterm.Info.Printf("%s, your balance: %s\n", username, pterm.Bold.Sprint(balance))
}
