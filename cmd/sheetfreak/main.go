package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/C9-Tech-GtitHub/SheetFreak/commands"
)

var cli = []commands.Command{
	&commands.AuthoriseCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.ClearCmd,
	&commands.FormatCmd,
	&commands.BorderCmd,
	&commands.RevisionsCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		return
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			if err := cmd.FlagSet().Parse(args[1:]); err != nil {
				fmt.Printf("\nError parsing command line: %v\n\n", err)
				os.Exit(1)
			}

			if err := cmd.Execute(&options); err != nil {
				log.Fatalf("ERROR: %v", err)
			}

			return
		}
	}

	fmt.Printf("\nInvalid command '%s'\n\n", args[0])
	usage()
	os.Exit(1)
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-13s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific information\n", commands.APP)
	fmt.Println()
}

func help(args []string) {
	if len(args) == 0 {
		usage()
		return
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			cmd.Help()
			return
		}
	}

	fmt.Printf("\nInvalid command '%s'\n\n", args[0])
	usage()
}
