// Package cliopts parses and validates the command-line surface of
// cmd/circumference: the mutually exclusive measure selectors -c/-p/-l,
// the -d/-f/-o/-C modifiers, and -h. It is built on spf13/cobra so a
// single Command carries both flag parsing and the generated usage text,
// the way kubernetes-sigs/depstat wires its subcommands, adapted here to
// one root command with Unix-style short flags instead of subcommands.
//
// Parse never calls os.Exit; it reports usage problems as an error so the
// caller decides the process exit code and where the message is written.
package cliopts
