package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"marketplace-client/internal/app"
)

type handler func(ctx context.Context, a *app.App, fs *flag.FlagSet, args []string, out io.Writer) error

type command struct {
	usage string
	// flags registers the command's flags and returns the handler bound to them.
	flags func(fs *flag.FlagSet) handler
}

var errUsage = errors.New("usage")

var commands = map[string]command{}

func register(name, usage string, flags func(fs *flag.FlagSet) handler) {
	commands[name] = command{usage: usage, flags: flags}
}

// simple registers a command without flags.
func simple(name, usage string, h handler) {
	register(name, usage, func(*flag.FlagSet) handler { return h })
}

func run(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		printUsage(out)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printUsage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(out)
	h := cmd.flags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	err := h(ctx, a, fs, fs.Args(), out)
	if errors.Is(err, errUsage) {
		return fmt.Errorf("usage: marketplace %s %s", args[0], cmd.usage)
	}
	return err
}

func printUsage(out io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "usage: marketplace <command> [flags] [args]")
	fmt.Fprintln(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, commands[name].usage)
	}
	tw.Flush()
}

// arg returns the i-th positional argument or errUsage.
func arg(args []string, i int) (string, error) {
	if i >= len(args) || args[i] == "" {
		return "", errUsage
	}
	return args[i], nil
}

func table(out io.Writer, header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	tw.Flush()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
