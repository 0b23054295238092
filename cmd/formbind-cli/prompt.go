package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbind/pkg/dom"
)

// errAborted reports a user interrupt during the interactive fill.
var errAborted = errors.New("formbind-cli: fill aborted")

// prompter abstracts the terminal prompts so the fill flow can be tested
// without a real terminal.
type prompter interface {
	Input(message, defaultValue string) (string, error)
	Select(message string, options []string) (string, error)
	MultiSelect(message string, options []string) ([]string, error)
	Multiline(message string) (string, error)
}

// surveyPrompter is the terminal-backed prompter the CLI runs with.
type surveyPrompter struct{}

func (surveyPrompter) Input(message, defaultValue string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: defaultValue}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) MultiSelect(message string, options []string) ([]string, error) {
	var out []string
	prompt := &survey.MultiSelect{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Multiline(message string) (string, error) {
	var out string
	if err := survey.AskOne(&survey.Multiline{Message: message}, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// promptForKeys asks for a value per discovered control key, shaping each
// prompt by the control kind the key resolves to. Skipped controls (files,
// empty choice lists) contribute nothing to the data map.
func promptForKeys(doc *html.Node, p prompter) (map[string]any, error) {
	keys := dom.ControlKeys(doc)
	data := make(map[string]any, len(keys))
	for _, key := range keys {
		group := dom.Resolve(doc, key)
		if len(group) == 0 {
			continue
		}
		value, err := promptForGroup(p, key, group)
		if err != nil {
			return nil, err
		}
		if value != nil {
			data[key] = value
		}
	}
	return data, nil
}

func promptForGroup(p prompter, key string, group []*dom.Element) (any, error) {
	lead := group[0]
	switch {
	case lead.Kind == dom.KindRadio:
		return promptChoice(p, key, groupValues(group))
	case lead.Kind == dom.KindCheckbox:
		return promptMultiChoice(p, key, groupValues(group))
	case lead.Kind == dom.KindSelect && lead.Multiple():
		return promptMultiChoice(p, key, optionValues(lead))
	case lead.Kind == dom.KindSelect:
		return promptChoice(p, key, optionValues(lead))
	case lead.Kind == dom.KindTextArea:
		return p.Multiline(key)
	case lead.Kind == dom.KindFileInput:
		return nil, nil
	default:
		return p.Input(key, lead.Value())
	}
}

func promptChoice(p prompter, key string, options []string) (any, error) {
	if len(options) == 0 {
		return nil, nil
	}
	return p.Select(key, options)
}

func promptMultiChoice(p prompter, key string, options []string) (any, error) {
	if len(options) == 0 {
		return nil, nil
	}
	return p.MultiSelect(key, options)
}

func groupValues(group []*dom.Element) []string {
	out := make([]string, 0, len(group))
	for _, el := range group {
		out = append(out, el.Value())
	}
	return out
}

func optionValues(el *dom.Element) []string {
	options := el.Options()
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.OptionValue())
	}
	return out
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
