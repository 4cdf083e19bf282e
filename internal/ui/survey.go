package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption makes survey prompts use the same "-" marker as the rest of the UI.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
