// Package diag provides the small leveled-console-output helper used by
// the CLI's dump phases (-l/-p/-cg) and fatal-error reporting. The
// teacher repo has no structured logging of its own (its only output is
// REPL fmt.Println calls); this wraps the standard log.Logger, framing
// each dump phase with a banner, the natural upgrade for a batch CLI tool and the only
// logging approach the retrieved corpus exercises anywhere (see
// SPEC_FULL.md's AMBIENT STACK section). Per spec.md §6/§7, dump-phase
// output and fatal-error reporting are distinct channels: dumps go to
// stdout, fatal diagnostics go to stderr.
package diag

import (
	"log"
	"os"
)

var (
	stdout = log.New(os.Stdout, "", 0)
	stderr = log.New(os.Stderr, "", 0)
)

// Section prints a banner followed by body to stdout, matching the
// "---------- NAME ----------" framing original_source/main.py's
// process() uses (via plain print()) for its -l/-p/-cg dump phases.
func Section(name, body string) {
	stdout.Printf("---------- %s ----------\n%s\n", name, body)
}

// Fatalf reports a single diagnostic line to stderr. The caller is
// responsible for terminating the process, per spec.md §7's "single
// diagnostic line to stderr" contract.
func Fatalf(format string, args ...any) {
	stderr.Printf(format, args...)
}
