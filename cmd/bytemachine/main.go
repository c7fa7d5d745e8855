// Command bytemachine loads and runs the canned demo programs against
// the byteproc simulator core, printing a structured summary of the
// final machine state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bytemachine"
	"bytemachine/asm"
	"bytemachine/trace"
)

var (
	cycleLimit uint64
	showTrace  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bytemachine",
		Short: "Runs programs on the byte-wide register machine simulator",
	}
	root.AddCommand(newListCommand())
	root.AddCommand(newRunCommand())
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the available demo programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range demoPrograms {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", d.name, d.description)
			}
			return nil
		},
	}
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Runs a demo program to completion",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	cmd.Flags().Uint64Var(&cycleLimit, "cycle-limit", 100000, "maximum ticks before forced stop")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "print a line of state for every tick")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	demo, ok := findDemo(args[0])
	if !ok {
		return fmt.Errorf("bytemachine: no such demo program %q", args[0])
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("bytemachine: building logger: %w", err)
	}
	defer logger.Sync()

	m := byteproc.NewMachine(byteproc.WithCycleLimit(cycleLimit))
	loader := asm.NewLoader(m.Memory)
	if err := loader.Assemble(demo.program); err != nil {
		return fmt.Errorf("bytemachine: assembling %q: %w", demo.name, err)
	}

	renderer := trace.NewRenderer(cmd.OutOrStdout())

	logger.Info("starting run", zap.String("program", demo.name), zap.Uint64("cycle_limit", cycleLimit))

	for !m.CPU.Halted() && m.Clock.Ticks() < cycleLimit {
		if showTrace {
			renderer.Line(trace.Capture(m))
		}
		if err := m.Tick(); err != nil {
			logger.Error("run aborted", zap.Error(err), zap.Uint64("tick", m.Clock.Ticks()))
			return err
		}
	}

	logger.Info("run finished",
		zap.String("program", demo.name),
		zap.Bool("halted", m.CPU.Halted()),
		zap.Uint64("ticks", m.Clock.Ticks()),
		zap.Any("registers", m.CPU.Registers()),
	)
	renderer.Dump(trace.Capture(m))
	return nil
}
