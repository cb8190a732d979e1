package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/napalu/sarge"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	parser, err := sarge.NewParserWith(
		sarge.WithHelpDescription("Sarge command line argument parsing testing app. For demonstration purposes and testing."),
		sarge.WithUsage("sarge-demo <options>"),
		sarge.WithLogger(logger),
		sarge.WithFlag("help", sarge.NewFlag(
			sarge.WithShortFlag("h"),
			sarge.WithDescription("Get help."))),
		sarge.WithFlag("kittens", sarge.NewFlag(
			sarge.WithShortFlag("k"),
			sarge.WithDescription("K is for kittens. Everyone needs kittens in their life."),
			sarge.WithValue(true))),
		sarge.WithFlag("number", sarge.NewFlag(
			sarge.WithShortFlag("n"),
			sarge.WithDescription("Gimme a number. Any number."),
			sarge.WithValue(true))),
		sarge.WithFlag("apple", sarge.NewFlag(
			sarge.WithShortFlag("a"),
			sarge.WithDescription("Just an apple."))),
		sarge.WithFlag("bear", sarge.NewFlag(
			sarge.WithShortFlag("b"),
			sarge.WithDescription("Look, it's a bear."))),
		sarge.WithFlag("snake", sarge.NewFlag(
			sarge.WithDescription("Snakes only come in long form, there are no short snakes."))),
		sarge.WithFlag("verbose", sarge.NewFlag(
			sarge.WithShortFlag("v"),
			sarge.WithDescription("Trace how each argument is classified."))),
		sarge.WithFlag("completion", sarge.NewFlag(
			sarge.WithDescription("Print the completion script for a shell (bash, zsh, fish, powershell)."),
			sarge.WithValue(true))),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := parser.ParseOSArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse arguments: %v\n", err)
		os.Exit(1)
	}

	if result.Exists("verbose") {
		level.Set(slog.LevelDebug)
		if result, err = parser.ParseOSArgs(); err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't parse arguments: %v\n", err)
			os.Exit(1)
		}
	}

	if shell, found := result.Flag("completion"); found {
		if err := parser.PrintCompletion(os.Stdout, shell, os.Args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Number of flags found: %d\n", result.MatchedFlagCount())

	if result.Exists("help") {
		if err := parser.PrintHelp(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("No help requested...")
	}

	if kittens, found := result.Flag("kittens"); found {
		fmt.Printf("Got kittens: %s\n", kittens)
	}

	if number, found := result.Flag("number"); found {
		fmt.Printf("Got number: %s\n", number)
	}

	if text, found := result.Positional(0); found {
		fmt.Printf("Got text argument: %s\n", text)
	}
}
