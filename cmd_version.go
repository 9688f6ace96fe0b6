package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

const version = "0.1.0"

// versionCmd mirrors informatter-nilan's one-command-per-file layout for
// a trivial, flag-free subcommand.
type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "Print the compiler version" }
func (*versionCmd) Usage() string            { return "version:\n  Print the compiler version.\n" }
func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	fmt.Println("cc0 " + version)
	return subcommands.ExitSuccess
}
