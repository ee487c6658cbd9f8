// Command hexsolve is a thin driving shell over internal/solver: a
// line-based stdin/stdout command loop exposing set_board_size, play,
// undo, solve_state, and the param_solver/param_solver_ice key/value
// knobs, shaped as a protocol struct owning engine + position state
// whose Run drains a bufio.Scanner.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hexsolve/hexsolve/internal/hexboard"
	"github.com/hexsolve/hexsolve/internal/hexcore"
	"github.com/hexsolve/hexsolve/internal/ice"
	"github.com/hexsolve/hexsolve/internal/ordering"
	"github.com/hexsolve/hexsolve/internal/posdb"
	"github.com/hexsolve/hexsolve/internal/solver"
	"github.com/hexsolve/hexsolve/internal/tt"
)

var (
	dbPath = flag.String("db", "", "path to a persistent position database (badger); empty disables it")
	ttSize = flag.Int("ttsize-mb", 64, "in-memory transposition table size in MB")
)

func main() {
	flag.Parse()

	var db *posdb.PositionDB
	if *dbPath != "" {
		opened, err := posdb.Open(*dbPath)
		if err != nil {
			log.Printf("position database not opened: %v (continuing without it)", err)
		} else {
			db = opened
			defer db.Close()
		}
	}

	shell := newShell(db, *ttSize)
	if err := shell.run(os.Stdin, os.Stdout); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// shell owns the live HexBoard plus the solver knobs set_board_size/
// param_solver/param_solver_ice mutate, rebuilding the board whenever
// set_board_size changes its dimensions.
type shell struct {
	db     *posdb.PositionDB
	ttSize int

	g         *hexcore.Geometry
	hb        *hexboard.HexBoard
	iceCfg    ice.Config
	solverCfg solver.Config

	// fatal latches the first invariant violation a solve_state call
	// hits. run stops draining commands and returns it once set, so
	// main can map it to a nonzero exit code rather than silently
	// continuing on search state that's no longer trustworthy.
	fatal error
}

func newShell(db *posdb.PositionDB, ttSize int) *shell {
	s := &shell{db: db, ttSize: ttSize, iceCfg: ice.DefaultConfig(), solverCfg: solver.DefaultConfig()}
	s.resize(11, 11)
	return s
}

func (s *shell) resize(width, height int) {
	s.g = hexcore.NewGeometry(width, height)
	s.hb = hexboard.New(s.g, s.iceCfg)
}

// run drains commands from r, one per line, writing responses to w.
// Returns non-nil only on an I/O failure reading commands or an
// invariant violation surfaced by a solve_state call; exit code 0 on
// clean shutdown, nonzero otherwise. "quit" and EOF both end the loop
// cleanly. A solve_state invariant violation still writes its "unknown"
// response line before the loop stops, since the protocol expects every
// command to get a response.
func (s *shell) run(r *os.File, w *os.File) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			out.Flush()
			return nil
		case "set_board_size":
			s.handleSetBoardSize(out, args)
		case "play":
			s.handlePlay(out, args)
		case "undo":
			s.handleUndo(out)
		case "solve_state":
			s.handleSolveState(out, args)
		case "param_solver":
			s.handleParamSolver(out, args)
		case "param_solver_ice":
			s.handleParamSolverICE(out, args)
		case "show":
			fmt.Fprintln(out, s.hb.Board.String())
		default:
			fmt.Fprintf(out, "? unknown command: %s\n", cmd)
		}
		out.Flush()
		if s.fatal != nil {
			return s.fatal
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("hexsolve: reading commands: %w", err)
	}
	return nil
}

func (s *shell) handleSetBoardSize(out *bufio.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "? usage: set_board_size width height")
		return
	}
	width, err1 := strconv.Atoi(args[0])
	height, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		fmt.Fprintln(out, "? width/height must be positive integers")
		return
	}
	s.resize(width, height)
	fmt.Fprintln(out, "=")
}

func (s *shell) handlePlay(out *bufio.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "? usage: play <black|white> <cell>")
		return
	}
	color, ok := parseColor(args[0])
	if !ok {
		fmt.Fprintln(out, "? color must be black or white")
		return
	}
	p, ok := parseCell(s.g, args[1])
	if !ok {
		fmt.Fprintln(out, "? bad cell")
		return
	}
	if err := s.hb.PlayMove(p, color); err != nil {
		fmt.Fprintf(out, "? %v\n", err)
		return
	}
	fmt.Fprintln(out, "=")
}

func (s *shell) handleUndo(out *bufio.Writer) {
	if err := s.hb.UndoMove(); err != nil {
		fmt.Fprintf(out, "? %v\n", err)
		return
	}
	fmt.Fprintln(out, "=")
}

func (s *shell) handleSolveState(out *bufio.Writer, args []string) {
	color := s.hb.ToPlay
	if len(args) == 1 {
		c, ok := parseColor(args[0])
		if !ok {
			fmt.Fprintln(out, "? color must be black or white")
			return
		}
		color = c
	}

	table := tt.NewBySizeMB(s.ttSize)
	store := posdb.NewSolverDB(table, s.db, s.g)
	scorer := ordering.NewScorer(s.solverCfg.OrderingFlags, ordering.DirectResistance{}, table)
	sv := solver.New(s.hb, store, tt.NewProofStore(), scorer, s.solverCfg)

	result, _ := sv.Solve(color)
	switch result {
	case solver.Win:
		fmt.Fprintln(out, color.String())
	case solver.Loss:
		fmt.Fprintln(out, color.Other().String())
	default:
		fmt.Fprintln(out, "unknown")
	}
	if err := sv.LastError(); err != nil {
		s.fatal = fmt.Errorf("hexsolve: solve_state: %w", err)
	}
}

func (s *shell) handleParamSolver(out *bufio.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "? usage: param_solver <name> <value>")
		return
	}
	name, value := args[0], args[1]
	var err error
	switch name {
	case "use_decompositions":
		s.solverCfg.UseDecompositions, err = parseBool(value)
	case "shrink_proofs":
		s.solverCfg.ShrinkProofs, err = parseBool(value)
	case "backup_ice_info":
		s.solverCfg.BackupICEInfo, err = parseBool(value)
	case "root_again":
		s.solverCfg.RootAgain, err = parseBool(value)
	case "depth_limit":
		s.solverCfg.DepthLimit, err = strconv.Atoi(value)
	case "progress_depth":
		s.solverCfg.ProgressDepth, err = strconv.Atoi(value)
	case "update_depth":
		s.solverCfg.UpdateDepth, err = strconv.Atoi(value)
	case "time_limit":
		var seconds float64
		seconds, err = strconv.ParseFloat(value, 64)
		if err == nil {
			s.solverCfg.TimeLimit = time.Duration(seconds * float64(time.Second))
		}
	case "move_ordering":
		err = s.setOrderingFlags(value)
	default:
		fmt.Fprintf(out, "? unknown param_solver key: %s\n", name)
		return
	}
	if err != nil {
		fmt.Fprintf(out, "? bad value for %s: %v\n", name, err)
		return
	}
	fmt.Fprintln(out, "=")
}

func (s *shell) setOrderingFlags(value string) error {
	var flags ordering.Flags
	for _, tok := range strings.Split(value, ",") {
		switch strings.TrimSpace(tok) {
		case "", "none":
		case "from_center":
			flags |= ordering.FromCenter
		case "with_resist":
			flags |= ordering.WithResist
		case "with_mustplay":
			flags |= ordering.WithMustplay
		default:
			return fmt.Errorf("unknown ordering flag %q", tok)
		}
	}
	s.solverCfg.OrderingFlags = flags
	return nil
}

func (s *shell) handleParamSolverICE(out *bufio.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "? usage: param_solver_ice <name> <value>")
		return
	}
	name, value := args[0], args[1]
	v, err := parseBool(value)
	if err != nil {
		fmt.Fprintf(out, "? bad value for %s: %v\n", name, err)
		return
	}
	switch name {
	case "find_permanently_inferior":
		s.iceCfg.FindPermanentlyInferior = v
	case "find_all_pattern_killers", "find_reversible":
		s.iceCfg.FindReversible = v
	case "find_dominated":
		s.iceCfg.FindDominated = v
	case "iterative_dead_regions", "find_three_sided_dead_regions":
		s.iceCfg.UnreachableFillin = v
	case "backup_opponent_dead":
		s.iceCfg.BackupOpponentDead = v
	default:
		fmt.Fprintf(out, "? unknown param_solver_ice key: %s\n", name)
		return
	}
	// ICE config only takes effect on the engine the board was built
	// with; rebuild over the same geometry (losing in-progress moves,
	// the usual setoption-mid-game tradeoff) so the new rules apply
	// from here on.
	s.hb = hexboard.New(s.g, s.iceCfg)
	fmt.Fprintln(out, "=")
}

func parseColor(s string) (hexcore.Color, bool) {
	switch strings.ToLower(s) {
	case "black", "b":
		return hexcore.Black, true
	case "white", "w":
		return hexcore.White, true
	default:
		return hexcore.Empty, false
	}
}

// parseCell parses algebraic notation ("a1") into a Point, the inverse
// of Geometry.String.
func parseCell(g *hexcore.Geometry, s string) (hexcore.Point, bool) {
	if len(s) < 2 {
		return hexcore.NoPoint, false
	}
	col := int(s[0] - 'a')
	row, err := strconv.Atoi(s[1:])
	if err != nil || col < 0 || col >= g.Width || row < 1 || row > g.Height {
		return hexcore.NoPoint, false
	}
	return g.PointAt(row-1, col), true
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q", s)
	}
}
