package main

import (
	"io"
	"os"

	"github.com/woozymasta/osmosint/internal/config"
	"github.com/woozymasta/osmosint/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"OSMOSINT_CONFIG" description:"Path to configuration file" default:"osmosint.yaml"`
}

// app carries what every command needs once global options are parsed.
type app struct {
	opts Options
	cfg  *config.Config
	in   io.Reader
	out  io.Writer
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	a := &app{in: in, out: out}

	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "osmosint"
	parser.LongDescription = "Find anything anywhere: query OpenStreetMap through the Overpass API."
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		a.opts.Logger.Setup()

		cfg, err := config.Load(a.opts.ConfigFile)
		if err != nil {
			return &configError{err: err}
		}
		a.cfg = cfg

		if cmd == nil {
			return nil
		}
		return cmd.Execute(args)
	}

	if err := addCommands(parser, a); err != nil {
		return report(out, os.Stderr, err)
	}

	_, err := parser.ParseArgs(args)
	return report(out, os.Stderr, err)
}

func addCommands(parser *flags.Parser, a *app) error {
	if _, err := parser.AddCommand("locate",
		"Find every element with a tag in an area",
		"Find every node carrying a tag inside a named area or a bounding box.",
		&LocateCommand{app: a}); err != nil {
		return err
	}

	if _, err := parser.AddCommand("radius",
		"Find elements with a tag near elements with another tag",
		"Find every node carrying a tag within a radius of a node carrying a second tag.",
		&RadiusCommand{app: a}); err != nil {
		return err
	}

	if _, err := parser.AddCommand("convert",
		"Convert coordinates between decimal and DMS notation",
		"Convert each argument, or read coordinates interactively until 'exit'.",
		&ConvertCommand{app: a}); err != nil {
		return err
	}

	return nil
}
