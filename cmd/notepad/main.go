package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	adapter "github.com/ionut-t/gonotepad/adapter-bubbletea"
	"github.com/ionut-t/gonotepad/core"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	themeName := flag.String("theme", "", "startup theme: default, dark or light")
	noSyntax := flag.Bool("no-syntax", false, "start with syntax highlighting disabled")
	flag.Parse()

	var opts []core.Option
	if *themeName != "" {
		name := strings.ToLower(*themeName)
		opts = append(opts, core.WithTheme(name))
	}
	if *noSyntax {
		opts = append(opts, core.WithSyntaxDisabled())
	}

	session := core.NewSession(flag.Args(), opts...)

	p := tea.NewProgram(adapter.New(session), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running Bubble Tea program: %v", err)
	}
}
