package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmPhrase must be typed to confirm a destructive operation
const ConfirmPhrase = "yes"

// ConfirmDangerousOperation shows a warning box and reads one line from
// in. It returns true only when the line is ConfirmPhrase.
func ConfirmDangerousOperation(in io.Reader, p *Printer, title string, warnings []string) bool {
	r := NewWarningResult(title).SetWidth(p.Width())
	r.Hints = warnings
	p.Println(r.Render())

	p.Printf("%s ", PromptStyle.Render(fmt.Sprintf("Type %q to continue:", ConfirmPhrase)))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		p.Println("")
		return false
	}

	if strings.EqualFold(strings.TrimSpace(input), ConfirmPhrase) {
		return true
	}

	p.Println(HintStyle.Render("Operation cancelled."))
	return false
}

// ConfirmClear asks before deleting every todo
func ConfirmClear(in io.Reader, p *Printer, count int) bool {
	return ConfirmDangerousOperation(in, p,
		"CLEAR ALL TODOS",
		[]string{
			fmt.Sprintf("This permanently deletes %d todo(s)", count),
			"Completed and open todos are both removed",
		},
	)
}
