// SPDX-License-Identifier: MIT

// Command lightsout solves Lights Out boards given as flat '0'/'1' strings.
//
// Boards are read from the arguments, or one per line from stdin when there are none.
// For each board it prints the minimum-weight press matrix, or the reason it failed.
//
//	lightsout 000000000
//	echo 1111111111111111 | lightsout -invert=false -verify
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lightsout/board"
	"github.com/katalvlaran/lightsout/gridgraph"
	"github.com/katalvlaran/lightsout/lightsout"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	invert     bool
	conn       gridgraph.Connectivity
	maxNullity int
	verify     bool
	verbose    bool
	cpuProfile string
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	fs := flag.NewFlagSet("lightsout", flag.ContinueOnError)
	fs.SetOutput(stderr)

	invert := fs.Bool("invert", true, "Flip every decoded cell (input marks cells that are already on)")
	conn := fs.String("conn", gridgraph.Conn4.String(), "Press neighbourhood: conn4 or conn8")
	maxNullity := fs.Int("max-nullity", lightsout.DefaultMaxNullity, "Largest null space to search exhaustively")
	verify := fs.Bool("verify", false, "Re-apply each solution and check it reproduces the board")
	verbose := fs.Bool("v", false, "Debug logging")
	cpuProfile := fs.String("cpuprofile", "", "Write a CPU profile to this file")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	c, err := gridgraph.ParseConnectivity(*conn)
	if err != nil {
		return options{}, nil, err
	}
	if *maxNullity < 0 || *maxNullity > lightsout.MaxSupportedNullity {
		return options{}, nil, fmt.Errorf("-max-nullity %d outside [0,%d]", *maxNullity, lightsout.MaxSupportedNullity)
	}

	return options{
		invert:     *invert,
		conn:       c,
		maxNullity: *maxNullity,
		verify:     *verify,
		verbose:    *verbose,
		cpuProfile: *cpuProfile,
	}, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, boards, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "lightsout:", err)
		return 2
	}

	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			log.Error().Err(err).Msg("create profile")
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("start profile")
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	app := &solverCache{opts: opts, log: log, solvers: map[int]*lightsout.Solver{}}

	failed := 0
	handle := func(line string) {
		text := strings.TrimSpace(line)
		if text == "" {
			return
		}
		out, err := app.solve(text)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "%s: %v\n", text, err)
			return
		}
		fmt.Fprintf(stdout, "%s:\n%s", text, out)
	}

	if len(boards) > 0 {
		for _, a := range boards {
			handle(a)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			handle(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Error().Err(err).Msg("read stdin")
			return 1
		}
	}

	if failed > 0 {
		log.Warn().Int("failed", failed).Msg("some boards were not solved")
		return 1
	}

	return 0
}

// solverCache keeps one Solver per grid size; building one costs an O(n⁶/64) inversion.
type solverCache struct {
	opts    options
	log     zerolog.Logger
	solvers map[int]*lightsout.Solver
}

func (c *solverCache) get(n int) (*lightsout.Solver, error) {
	if s, ok := c.solvers[n]; ok {
		return s, nil
	}
	s, err := lightsout.NewSolver(n,
		lightsout.WithLogger(c.log),
		lightsout.WithConnectivity(c.opts.conn),
		lightsout.WithMaxNullity(c.opts.maxNullity),
	)
	if err != nil {
		return nil, err
	}
	c.solvers[n] = s

	return s, nil
}

// solve decodes text and returns the rendered press matrix.
func (c *solverCache) solve(text string) (string, error) {
	b, err := board.Decode(text, c.opts.invert)
	if err != nil {
		return "", err
	}
	s, err := c.get(b.Size())
	if err != nil {
		return "", err
	}
	target := b.ToMatrix()
	presses, err := s.Solve(target)
	if err != nil {
		return "", err
	}

	if c.opts.verify {
		got, err := s.Apply(presses)
		if err != nil {
			return "", err
		}
		if !got.Equal(target) {
			return "", fmt.Errorf("verification failed for size %d", b.Size())
		}
		c.log.Debug().Int("size", b.Size()).Int("presses", presses.Weight()).Msg("verified")
	}

	return presses.String(), nil
}
