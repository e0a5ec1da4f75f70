package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/no-preserve-root/quanteq/eq"
	"github.com/no-preserve-root/quanteq/internal/log"
	"github.com/no-preserve-root/quanteq/model"
	"github.com/no-preserve-root/quanteq/quant"
	"github.com/no-preserve-root/quanteq/sexpr"
	"github.com/no-preserve-root/quanteq/term"
)

var SolveCmd = &cobra.Command{
	Use:          "solve file.qeq",
	Short:        "Load equality assertions and answer representative queries",
	RunE:         runSolve,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	repMode  *string
	fmf      *bool
	logLevel *int
)

func init() {
	repMode = SolveCmd.Flags().StringP("rep-mode", "m", "depth", "representative mode: depth|first|ee")
	fmf = SolveCmd.Flags().Bool("fmf", false, "map model values back to witnessing terms")
	logLevel = SolveCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runSolve(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	mode, err := quant.ParseRepMode(*repMode)
	if err != nil {
		return err
	}
	input, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read problem file: %w", err)
	}
	nodes, err := sexpr.Parse(string(input))
	if err != nil {
		return fmt.Errorf("could not parse %s: %w", args[0], err)
	}

	opts := quant.DefaultOptions()
	opts.Mode = mode
	opts.FiniteModelFind = *fmf

	session := newSession(opts)
	for _, node := range nodes {
		if err := session.eval(node, cmd); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
	}
	return nil
}

type funcDecl struct {
	params []term.Sort
	ret    term.Sort
}

// session is the mutable state of one solve run: the term store, the
// declared symbols, and the engine stack around the selector.
type session struct {
	store    *term.Store
	db       *term.Database
	engine   *eq.UnionFind
	repSet   *model.RepSet
	selector *quant.Selector
	consts   map[string]*term.Term
	funcs    map[string]funcDecl
}

func newSession(opts quant.Options) *session {
	store := term.NewStore()
	db := term.NewDatabase(store)
	engine := eq.NewUnionFind()
	repSet := model.NewRepSet()
	return &session{
		store:    store,
		db:       db,
		engine:   engine,
		repSet:   repSet,
		selector: quant.NewSelector(opts, engine, db, repSet),
		consts:   make(map[string]*term.Term),
		funcs:    make(map[string]funcDecl),
	}
}

func (s *session) eval(node *sexpr.Node, cmd *cobra.Command) error {
	if node.IsAtom() || len(node.List) == 0 || !node.List[0].IsAtom() {
		return fmt.Errorf("expected a command, got %s", node)
	}
	head, rest := node.List[0].Atom, node.List[1:]
	switch head {
	case "declare-sort":
		name, err := atom(rest, 0)
		if err != nil {
			return err
		}
		s.store.DeclareSort(name)
		return nil
	case "declare-const", "declare-value":
		name, err := atom(rest, 0)
		if err != nil {
			return err
		}
		sortName, err := atom(rest, 1)
		if err != nil {
			return err
		}
		sort, ok := s.store.SortByName(sortName)
		if !ok {
			return fmt.Errorf("unknown sort %s", sortName)
		}
		if head == "declare-value" {
			s.consts[name] = s.store.Value(name, sort)
		} else {
			s.consts[name] = s.store.Const(name, sort)
		}
		return nil
	case "declare-fun":
		return s.evalDeclareFun(rest)
	case "assert":
		return s.evalAssert(rest)
	case "model-value":
		value, err := s.parseTerm(rest, 0)
		if err != nil {
			return err
		}
		witness, err := s.parseTerm(rest, 1)
		if err != nil {
			return err
		}
		s.repSet.Assign(value, witness)
		return nil
	case "set-inst-level":
		t, err := s.parseTerm(rest, 0)
		if err != nil {
			return err
		}
		levelStr, err := atom(rest, 1)
		if err != nil {
			return err
		}
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return fmt.Errorf("bad instantiation level %q", levelStr)
		}
		s.db.SetInstLevel(t, level)
		return nil
	case "rep":
		t, err := s.parseTerm(rest, 0)
		if err != nil {
			return err
		}
		chosen := s.selector.InternalRepresentative(t, nil, 0)
		cmd.Printf("%s -> %s\n", t, chosen)
		return nil
	case "invalidate":
		s.selector.Invalidate()
		return nil
	default:
		return fmt.Errorf("unknown command %s", head)
	}
}

func (s *session) evalDeclareFun(rest []*sexpr.Node) error {
	name, err := atom(rest, 0)
	if err != nil {
		return err
	}
	if len(rest) < 3 || rest[1].IsAtom() {
		return fmt.Errorf("declare-fun wants (declare-fun name (sorts...) sort)")
	}
	decl := funcDecl{}
	for _, p := range rest[1].List {
		if !p.IsAtom() {
			return fmt.Errorf("bad parameter sort %s", p)
		}
		sort, ok := s.store.SortByName(p.Atom)
		if !ok {
			return fmt.Errorf("unknown sort %s", p.Atom)
		}
		decl.params = append(decl.params, sort)
	}
	retName, err := atom(rest, 2)
	if err != nil {
		return err
	}
	ret, ok := s.store.SortByName(retName)
	if !ok {
		return fmt.Errorf("unknown sort %s", retName)
	}
	decl.ret = ret
	s.funcs[name] = decl
	return nil
}

func (s *session) evalAssert(rest []*sexpr.Node) error {
	if len(rest) != 1 || rest[0].IsAtom() || len(rest[0].List) != 3 {
		return fmt.Errorf("assert wants (= a b) or (distinct a b)")
	}
	body := rest[0]
	a, err := s.buildTerm(body.List[1])
	if err != nil {
		return err
	}
	b, err := s.buildTerm(body.List[2])
	if err != nil {
		return err
	}
	s.register(a)
	s.register(b)
	switch body.List[0].Atom {
	case "=":
		return s.engine.Merge(a, b)
	case "distinct":
		return s.engine.Distinct(a, b)
	default:
		return fmt.Errorf("assert wants (= a b) or (distinct a b)")
	}
}

// register makes the whole subterm DAG known to the term database and
// the equality engine.
func (s *session) register(t *term.Term) {
	s.db.Register(t)
	s.engine.Add(t)
	for _, c := range t.Children() {
		s.register(c)
	}
}

func (s *session) parseTerm(rest []*sexpr.Node, i int) (*term.Term, error) {
	if i >= len(rest) {
		return nil, fmt.Errorf("missing argument %d", i)
	}
	return s.buildTerm(rest[i])
}

func (s *session) buildTerm(node *sexpr.Node) (*term.Term, error) {
	if node.IsAtom() {
		t, ok := s.consts[node.Atom]
		if !ok {
			return nil, fmt.Errorf("undeclared constant %s", node.Atom)
		}
		return t, nil
	}
	if len(node.List) == 0 || !node.List[0].IsAtom() {
		return nil, fmt.Errorf("bad term %s", node)
	}
	name := node.List[0].Atom
	decl, ok := s.funcs[name]
	if !ok {
		return nil, fmt.Errorf("undeclared function %s", name)
	}
	if len(node.List)-1 != len(decl.params) {
		return nil, fmt.Errorf("%s wants %d arguments, got %d", name, len(decl.params), len(node.List)-1)
	}
	args := make([]*term.Term, 0, len(decl.params))
	for i, argNode := range node.List[1:] {
		arg, err := s.buildTerm(argNode)
		if err != nil {
			return nil, err
		}
		if !arg.Sort().SubtypeOf(decl.params[i]) {
			return nil, fmt.Errorf("argument %d of %s has sort %s, want %s", i, name, arg.Sort(), decl.params[i])
		}
		args = append(args, arg)
	}
	return s.store.Apply(name, decl.ret, args...), nil
}

func atom(rest []*sexpr.Node, i int) (string, error) {
	if i >= len(rest) || !rest[i].IsAtom() {
		return "", fmt.Errorf("missing or non-atom argument %d", i)
	}
	return rest[i].Atom, nil
}
