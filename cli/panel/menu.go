package panel

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/thanzeeha/portfolio4/pkg/cli"
	"github.com/thanzeeha/portfolio4/pkg/portal"
)

type Menu struct {
	Choice    *int
	Reader    *bufio.Reader
	Validator *portal.Validator
}

func MakeMenu() Menu {
	menu := Menu{
		Reader:    bufio.NewReader(os.Stdin),
		Validator: portal.GetDefaultValidator(),
	}

	menu.Print()

	return menu
}

func (p *Menu) PrintLine() {
	_, _ = p.Reader.ReadString('\n')
}

func (p *Menu) GetChoice() int {
	if p.Choice == nil {
		return 0
	}

	return *p.Choice
}

func (p *Menu) CaptureInput() error {
	fmt.Print(cli.YellowColour + "Select an option: " + cli.Reset)
	input, err := p.Reader.ReadString('\n')

	if err != nil {
		return fmt.Errorf("%s error reading input: %v %s", cli.RedColour, err, cli.Reset)
	}

	input = strings.TrimSpace(input)
	choice, err := strconv.Atoi(input)

	if err != nil {
		return fmt.Errorf("%s Please enter a valid number. %s", cli.RedColour, cli.Reset)
	}

	p.Choice = &choice

	return nil
}

func (p *Menu) Print() {
	// Try to get the terminal width; default to 80 if it fails
	width, _, err := term.GetSize(int(os.Stdout.Fd()))

	if err != nil || width < 20 {
		width = 80
	}

	inner := width - 2 // space between the two border chars

	border := "╔" + strings.Repeat("═", inner) + "╗"
	title := "║" + p.CenterText(" Portfolio Admin ", inner) + "║"
	divider := "╠" + strings.Repeat("═", inner) + "╣"
	footer := "╚" + strings.Repeat("═", inner) + "╝"

	fmt.Println()
	fmt.Println(cli.CyanColour + border)
	fmt.Println(title)
	fmt.Println(divider)

	p.PrintOption("1) Edit a profile field", inner)
	p.PrintOption("2) Manage skills", inner)
	p.PrintOption("3) Manage education", inner)
	p.PrintOption("4) Manage projects", inner)
	p.PrintOption("5) Show the working copy", inner)
	p.PrintOption("6) Export a backup file", inner)
	p.PrintOption("7) Import a backup file", inner)
	p.PrintOption("8) Save", inner)
	p.PrintOption("9) Save and push to the remote store", inner)
	p.PrintOption("10) Reset to the default document", inner)
	p.PrintOption("0) Exit", inner)

	fmt.Println(footer + cli.Reset)
}

// PrintOption left-pads a space, writes the text, then fills to the full inner width.
func (p *Menu) PrintOption(text string, inner int) {
	content := " " + text

	if len(content) > inner {
		content = content[:inner]
	}

	padding := inner - len(content)
	fmt.Printf("║%s%s║\n", content, strings.Repeat(" ", padding))
}

// CenterText centers s within width, padding with spaces.
func (p *Menu) CenterText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}

	pad := width - len(s)
	left := pad / 2
	right := pad - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// CaptureText reads one trimmed line after printing the given prompt. An
// empty answer is allowed; scalar fields accept empty values.
func (p *Menu) CaptureText(prompt string) (string, error) {
	fmt.Print(prompt)

	input, err := p.Reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%sError reading input: %v %s", cli.RedColour, err, cli.Reset)
	}

	return strings.TrimSpace(input), nil
}

func (p *Menu) CaptureRequired(prompt string) (string, error) {
	input, err := p.CaptureText(prompt)
	if err != nil {
		return "", err
	}

	if input == "" {
		return "", fmt.Errorf("%sError: a value is required%s", cli.RedColour, cli.Reset)
	}

	return input, nil
}

func (p *Menu) CaptureIndex(prompt string) (int, error) {
	input, err := p.CaptureRequired(prompt)
	if err != nil {
		return 0, err
	}

	index, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%sError: please enter a valid number%s", cli.RedColour, cli.Reset)
	}

	return index, nil
}

// Confirm asks before a destructive action; anything but y/yes declines.
func (p *Menu) Confirm(prompt string) bool {
	answer, err := p.CaptureText(cli.YellowColour + prompt + " [y/N]: " + cli.Reset)
	if err != nil {
		return false
	}

	answer = strings.ToLower(answer)

	return answer == "y" || answer == "yes"
}
