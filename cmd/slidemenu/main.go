package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/slidemenu/cmd/slidemenu/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = commands.Run(args)
	case "simulate":
		err = commands.Simulate(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("slidemenu version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`slidemenu - sliding drawer menu

Usage: slidemenu <command> [options]

Commands:
  run         Run the drawer in the terminal (mouse drag or space to toggle)
  simulate    Replay a gesture script and print every animation frame
  init        Write a default slidemenu.toml
  version     Print version information
  help        Show this help message

Examples:
  slidemenu init --script gesture.toml    Create config and an example script
  slidemenu run --debug                   Run with debug logging to slidemenu.log
  slidemenu simulate --script gesture.toml

Configuration:
  The drawer and theme are configured via slidemenu.toml. Edits to the
  file are applied to a running 'slidemenu run' without a restart.`)
}
