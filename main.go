package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/pwcheck/zxcvbn/commands"
	"github.com/pwcheck/zxcvbn/preader"
)

func main() {
	app := cli.NewApp()
	app.Name = "zxcvbn"
	app.Version = "master"
	app.Usage = "a password strength estimator"

	var wordsArg string
	var dictArg cli.StringSlice

	dictFlag := cli.StringSliceFlag{
		Name:  "dictionary, D",
		Usage: "path to a ranked word list (one word per line, most common first); may repeat",
		Value: &dictArg,
	}
	wordsFlag := cli.StringFlag{
		Name:        "words, d",
		Usage:       "space-separated ad-hoc words to match at rank 1 (user name, site name, ...)",
		Destination: &wordsArg,
	}

	app.Commands = []cli.Command{
		{
			Name:      "estimate",
			Aliases:   []string{"e"},
			Usage:     "estimate the strength of the passwords given as arguments",
			ArgsUsage: "password [password ...]",
			Flags:     []cli.Flag{dictFlag, wordsFlag},
			Action: func(c *cli.Context) error {
				if !c.Args().Present() {
					return errors.New("at least one password argument is required")
				}
				analyzer, err := commands.NewAnalyzer(dictArg)
				if err != nil {
					return err
				}
				return commands.Estimate(os.Stdout, analyzer, c.Args(), strings.Fields(wordsArg))
			},
		},
		{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "read a password from the terminal (no echo) and estimate its strength",
			Flags:   []cli.Flag{dictFlag, wordsFlag},
			Action: func(c *cli.Context) error {
				analyzer, err := commands.NewAnalyzer(dictArg)
				if err != nil {
					return err
				}
				return commands.Check(os.Stdout, analyzer, preader.NewTerminal(), strings.Fields(wordsArg))
			},
		},
		{
			Name:    "bulk",
			Aliases: []string{"b"},
			Usage:   "read one \"password [word ...]\" line per evaluation from stdin, emit JSON per line",
			Flags:   []cli.Flag{dictFlag},
			Action: func(c *cli.Context) error {
				analyzer, err := commands.NewAnalyzer(dictArg)
				if err != nil {
					return err
				}
				return commands.Bulk(os.Stdout, os.Stdin, analyzer)
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		return errors.New("command is required; use help to see list of commands")
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
