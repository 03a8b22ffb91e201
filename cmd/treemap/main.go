// Command treemap runs a YAML script of ordered-map operations
// and prints the result of each one.
package main

import (
	"fmt"
	"os"

	"github.com/jpillora/opts"
	"github.com/pkg/errors"

	"github.com/jba/treemap/internal/logging"
	"github.com/jba/treemap/internal/script"
)

var version = "0.0.0-src" //set with ldflags

type config struct {
	Script   string `opts:"mode=arg, help=YAML script to run ('-' reads stdin)"`
	Order    string `opts:"help=key order overriding the script's: numeric or lexical"`
	LogLevel string `opts:"help=log level (error|warn|info|debug)"`
	LogFile  string `opts:"help=append log output to this file instead of the console"`
	LogColor bool   `opts:"help=color console log output"`
}

func main() {
	c := config{LogLevel: logging.DefaultLevel}
	opts.New(&c).Name("treemap").Version(version).Parse()

	if err := run(c); err != nil {
		fmt.Fprintln(os.Stderr, "treemap:", err)
		os.Exit(1)
	}
}

func run(c config) error {
	log, err := logging.New(c.LogLevel, c.LogFile, c.LogColor)
	if err != nil {
		return err
	}
	defer log.Close()

	in := os.Stdin
	if c.Script != "-" {
		f, err := os.Open(c.Script)
		if err != nil {
			return errors.Wrap(err, "opening script")
		}
		defer f.Close()
		in = f
	}
	s, err := script.Load(in)
	if err != nil {
		return errors.Wrap(err, c.Script)
	}
	if c.Order != "" {
		if err := s.SetOrder(c.Order); err != nil {
			return errors.Wrap(err, c.Script)
		}
	}
	log.Info("running %s with %d ops in %s order", c.Script, len(s.Ops), s.Order)
	_, err = s.Run(os.Stdout, log)
	return err
}
