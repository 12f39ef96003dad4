package cliopts

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ErrUsage wraps every rejected CLI combination: unknown flag, more than
// one of -c/-p/-l, -f without -c or -p, -f with -o, and -d with -f.
var ErrUsage = errors.New("cliopts: usage error")

// ErrHelp is returned when -h/--help was requested; it is not a usage
// error and the caller should print Usage() and exit 0.
var ErrHelp = errors.New("cliopts: help requested")

type flags struct {
	cycleFlag      bool
	pathFlag       bool
	lengthFlag     bool
	differenceFlag bool
	complementFlag bool
	helpFlag       bool
	forbidden      int
	output         int
}

func newCommand(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "circumference",
		Short:         "Measure circumference, longest path, and induced analogues of graph6 graphs read from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return nil },
	}
	cmd.Flags().BoolVarP(&f.cycleFlag, "induced-cycle", "c", false, "report longest induced cycle length instead of circumference")
	cmd.Flags().BoolVarP(&f.pathFlag, "induced-path", "p", false, "report longest induced path length instead of circumference")
	cmd.Flags().BoolVarP(&f.lengthFlag, "length", "l", false, "report longest path length instead of circumference")
	cmd.Flags().BoolVarP(&f.differenceFlag, "difference", "d", false, "report n minus the measured value instead of the value itself")
	cmd.Flags().IntVarP(&f.forbidden, "forbidden", "f", -1, "accept graphs with no induced occurrence of this length (requires -c or -p)")
	cmd.Flags().IntVarP(&f.output, "output", "o", -1, "accept graphs whose reported value equals this number")
	cmd.Flags().BoolVarP(&f.complementFlag, "complement", "C", false, "negate the accept/reject decision")
	cmd.Flags().BoolVarP(&f.helpFlag, "help", "h", false, "print usage and exit")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

// Parse validates args against the circumference CLI surface and returns
// the resulting Config, ErrHelp if -h was given, or ErrUsage wrapping the
// specific conflict otherwise.
func Parse(args []string) (Config, error) {
	var f flags
	cmd := newCommand(&f)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.helpFlag {
		return Config{}, ErrHelp
	}

	if f.cycleFlag && f.pathFlag {
		return Config{}, fmt.Errorf("%w: -c and -p are mutually exclusive", ErrUsage)
	}
	if (f.cycleFlag || f.pathFlag) && f.lengthFlag {
		return Config{}, fmt.Errorf("%w: -l cannot be combined with -c or -p", ErrUsage)
	}

	forbiddenSet := cmd.Flags().Changed("forbidden")
	outputSet := cmd.Flags().Changed("output")

	if forbiddenSet && outputSet {
		return Config{}, fmt.Errorf("%w: -f cannot be combined with -o", ErrUsage)
	}
	if forbiddenSet && !f.cycleFlag && !f.pathFlag {
		return Config{}, fmt.Errorf("%w: -f requires -c or -p", ErrUsage)
	}
	if forbiddenSet && f.differenceFlag {
		return Config{}, fmt.Errorf("%w: -d cannot be combined with -f", ErrUsage)
	}

	cfg := Config{
		Difference: f.differenceFlag,
		Complement: f.complementFlag,
	}
	switch {
	case f.cycleFlag:
		cfg.Measure = MeasureInducedCycle
	case f.pathFlag:
		cfg.Measure = MeasureInducedPath
	case f.lengthFlag:
		cfg.Measure = MeasurePath
	default:
		cfg.Measure = MeasureCircumference
	}
	if forbiddenSet {
		v := f.forbidden
		cfg.Forbidden = &v
	}
	if outputSet {
		v := f.output
		cfg.Output = &v
	}
	return cfg, nil
}

// Usage returns the generated help text for the circumference CLI surface.
func Usage() string {
	var f flags
	cmd := newCommand(&f)
	return cmd.UsageString()
}
