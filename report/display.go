package report

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/Dev-Re2906/hardhat/resolver"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	warnLabel   = color.New(color.FgYellow, color.Bold).SprintFunc()
	iceLabel    = color.New(color.FgHiRed, color.Bold, color.Underline).SprintFunc()
	fatalLabel  = color.New(color.FgHiRed, color.Bold).SprintFunc()
	pathStyle   = color.New(color.FgCyan).SprintFunc()
	hintStyle   = color.New(color.FgGreen).SprintFunc()
)

func displayICE(message string) {
	fmt.Printf("%s: %s\n", iceLabel("internal error"), message)
	fmt.Println("this is a defect in the resolver itself, not a problem with your project")
}

func displayFatal(message string) {
	fmt.Printf("%s: %s\n", fatalLabel("fatal"), message)
}

// displayResolverError renders a single structured error kind against the
// input path that triggered it.
func displayResolverError(path, kind, detail string) {
	fmt.Printf("%s %s: [%s] %s\n", errorLabel("error"), pathStyle(path), kind, detail)
}

func displayStdError(path string, err error) {
	fmt.Printf("%s %s: %s\n", errorLabel("error"), pathStyle(path), err)
}

// displaySuggestion renders the pure-local-import diagnostic's suggested
// remapping in remappings.txt line syntax ([context:]prefix=target).
func displaySuggestion(s resolver.SuggestedRemapping) {
	line := s.Prefix + "=" + s.Target
	if s.Context != "" {
		line = s.Context + ":" + line
	}
	fmt.Printf("  %s add to remappings.txt: %s\n", hintStyle("hint:"), line)
}
