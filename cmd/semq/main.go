package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/likeness/semblance"
	"github.com/likeness/semblance/engine"
)

// Version is a version of this build.
var Version = "semq/0.1"

var errHalt = errors.New("halt")

func main() {
	var verbose bool
	pflag.BoolVarP(&verbose, "verbose", "v", false, `verbose`)
	pflag.Parse()

	oldState, err := term.MakeRaw(0)
	if err != nil {
		logrus.Panicf("failed to enter raw mode: %v", err)
	}
	restore := func() {
		_ = term.Restore(0, oldState)
	}
	defer restore()

	t := term.NewTerminal(os.Stdin, "?- ")
	defer fmt.Printf("\r\n")

	log := logrus.New()
	log.SetOutput(t)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	s := newSession(t, log)

	for _, a := range pflag.Args() {
		b, err := os.ReadFile(a)
		if err != nil {
			restore()
			logrus.Panicf("failed to read %s: %v", a, err)
		}
		if err := s.exec(string(b)); err != nil {
			restore()
			logrus.Panicf("failed to execute %s: %v", a, err)
		}
	}

	for {
		line, err := t.ReadLine()
		if err != nil {
			if err == io.EOF {
				return
			}
			log.Errorf("failed to read line: %v", err)
			continue
		}
		if err := s.handle(line); err != nil {
			if errors.Is(err, errHalt) {
				return
			}
			log.Errorf("%v", err)
		}
	}
}

// session holds the terms and groups defined so far, by name.
type session struct {
	out     io.Writer
	log     *logrus.Logger
	terms   map[string]engine.Term
	clauses map[string]semblance.Clause
	groups  map[string]engine.Group
}

func newSession(out io.Writer, log *logrus.Logger) *session {
	return &session{
		out:     out,
		log:     log,
		terms:   map[string]engine.Term{},
		clauses: map[string]semblance.Clause{},
		groups:  map[string]engine.Group{},
	}
}

// exec runs every command in a script, one per line. Blank lines and lines
// starting with % are skipped.
func (s *session) exec(script string) error {
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if err := s.handle(line); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) handle(line string) error {
	args, err := tokenize(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	s.log.Debugf("CALL %s %s", cmd, strings.Join(args, " "))

	switch cmd {
	case "halt":
		return errHalt
	case "version":
		return s.print(Version)
	case "entity":
		return s.entity(args)
	case "quantity":
		return s.quantity(args)
	case "predicate":
		return s.predicate(args)
	case "comparison":
		return s.comparison(args)
	case "statement":
		return s.statement(args)
	case "absent":
		return s.modify(args, asAbsent)
	case "generic":
		return s.modify(args, asGeneric)
	case "group":
		return s.group(args)
	case "list":
		return s.list()
	case "implies", "means", "contradicts", "consistent":
		return s.relate(cmd, args)
	case "explain":
		return s.explain(args)
	case "union":
		return s.union(args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// entity NAME [concrete]
func (s *session) entity(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: entity NAME [concrete]")
	}
	e := semblance.NewEntity(args[0])
	if len(args) == 2 {
		if args[1] != "concrete" {
			return fmt.Errorf("unknown modifier %q", args[1])
		}
		e = e.MakeConcrete()
	}
	s.terms[args[0]] = e
	return s.print(e)
}

// quantity NAME AMOUNT UNIT
func (s *session) quantity(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: quantity NAME AMOUNT UNIT")
	}
	q, err := semblance.NewQuantity(args[1], args[2])
	if err != nil {
		return err
	}
	s.terms[args[0]] = q
	return s.print(q)
}

// predicate NAME TEMPLATE [false]
func (s *session) predicate(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("usage: predicate NAME TEMPLATE [false]")
	}
	truth := true
	if len(args) == 3 {
		if args[2] != "false" {
			return fmt.Errorf("unknown modifier %q", args[2])
		}
		truth = false
	}
	p, err := semblance.NewPredicate(args[1], truth)
	if err != nil {
		return err
	}
	s.clauses[args[0]] = p
	return s.print(p)
}

// comparison NAME TEMPLATE SIGN AMOUNT UNIT
func (s *session) comparison(args []string) error {
	if len(args) != 5 {
		return errors.New("usage: comparison NAME TEMPLATE SIGN AMOUNT UNIT")
	}
	q, err := semblance.NewQuantity(args[3], args[4])
	if err != nil {
		return err
	}
	c, err := semblance.NewComparison(args[1], semblance.Sign(args[2]), q, true)
	if err != nil {
		return err
	}
	s.clauses[args[0]] = c
	return s.print(c)
}

// statement NAME CLAUSE TERM...
func (s *session) statement(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: statement NAME CLAUSE TERM...")
	}
	c, ok := s.clauses[args[1]]
	if !ok {
		return fmt.Errorf("unknown clause %q", args[1])
	}
	ts := make([]engine.Term, 0, len(args)-2)
	for _, n := range args[2:] {
		t, err := s.term(n)
		if err != nil {
			return err
		}
		ts = append(ts, t)
	}
	st, err := semblance.NewStatement(c, ts...)
	if err != nil {
		return err
	}
	s.terms[args[0]] = st
	return s.print(st)
}

// modify stores a modified copy of a defined term under a new name.
func (s *session) modify(args []string, f func(engine.Term) (engine.Term, error)) error {
	if len(args) != 2 {
		return errors.New("usage: absent|generic NAME TERM")
	}
	t, err := s.term(args[1])
	if err != nil {
		return err
	}
	m, err := f(t)
	if err != nil {
		return err
	}
	s.terms[args[0]] = m
	return s.print(m)
}

func asAbsent(t engine.Term) (engine.Term, error) {
	switch t := t.(type) {
	case semblance.Entity:
		return t.MakeAbsent(), nil
	case semblance.Statement:
		return t.MakeAbsent(), nil
	default:
		return nil, fmt.Errorf("%s cannot be absent", t)
	}
}

func asGeneric(t engine.Term) (engine.Term, error) {
	switch t := t.(type) {
	case semblance.Entity:
		return t.MakeGeneric(), nil
	case semblance.Statement:
		return t.MakeGeneric(), nil
	default:
		return nil, fmt.Errorf("%s cannot be generic", t)
	}
}

// group NAME TERM...
func (s *session) group(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: group NAME TERM...")
	}
	g := make(engine.Group, 0, len(args)-1)
	for _, n := range args[1:] {
		t, err := s.term(n)
		if err != nil {
			return err
		}
		g = append(g, t)
	}
	s.groups[args[0]] = g
	return s.print(g)
}

func (s *session) list() error {
	for n, c := range s.clauses {
		if err := s.print(fmt.Sprintf("%s: %s", n, c)); err != nil {
			return err
		}
	}
	for n, t := range s.terms {
		if err := s.print(fmt.Sprintf("%s: %s", n, t)); err != nil {
			return err
		}
	}
	for n, g := range s.groups {
		if err := s.print(fmt.Sprintf("%s: %s", n, g)); err != nil {
			return err
		}
	}
	return nil
}

// relate answers a yes/no relation over two terms or two groups.
func (s *session) relate(rel string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s A B", rel)
	}

	if a, ok := s.groups[args[0]]; ok {
		b, ok := s.groups[args[1]]
		if !ok {
			return fmt.Errorf("unknown group %q", args[1])
		}
		return s.printBool(groupRelation(rel, a, b))
	}

	a, err := s.term(args[0])
	if err != nil {
		return err
	}
	b, err := s.term(args[1])
	if err != nil {
		return err
	}
	return s.printBool(termRelation(rel, a, b))
}

func termRelation(rel string, a, b engine.Term) bool {
	switch rel {
	case "implies":
		return engine.Implies(a, b)
	case "means":
		return engine.Means(a, b)
	case "contradicts":
		return engine.Contradicts(a, b)
	default:
		return engine.ConsistentWith(a, b)
	}
}

func groupRelation(rel string, a, b engine.Group) bool {
	switch rel {
	case "implies":
		return a.Implies(b)
	case "means":
		return a.Means(b)
	case "contradicts":
		return a.Contradicts(b)
	default:
		return a.ConsistentWith(b)
	}
}

// explain REL A B prints the first witness of the relation.
func (s *session) explain(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: explain implies|means|contradicts|consistent A B")
	}
	rel, args := args[0], args[1:]

	var p *engine.Promise
	if a, ok := s.groups[args[0]]; ok {
		b, ok := s.groups[args[1]]
		if !ok {
			return fmt.Errorf("unknown group %q", args[1])
		}
		p = groupExplanations(rel, a, b)
	} else {
		a, err := s.term(args[0])
		if err != nil {
			return err
		}
		b, err := s.term(args[1])
		if err != nil {
			return err
		}
		p = termExplanations(rel, a, b)
	}

	it := p.Iter()
	if !it.Next() {
		return s.print("false.")
	}
	return s.print(it.Current())
}

func termExplanations(rel string, a, b engine.Term) *engine.Promise {
	switch rel {
	case "implies":
		return engine.ExplanationsImplication(a, b, nil)
	case "means":
		return engine.ExplanationsSameMeaning(a, b, nil)
	case "contradicts":
		return engine.ExplanationsContradiction(a, b, nil)
	default:
		return engine.ExplanationsConsistentWith(a, b, nil)
	}
}

func groupExplanations(rel string, a, b engine.Group) *engine.Promise {
	switch rel {
	case "implies":
		return a.ExplanationsImplication(b, nil)
	case "means":
		return a.ExplanationsSameMeaning(b, nil)
	case "contradicts":
		return a.ExplanationsContradiction(b, nil)
	default:
		return a.ExplanationsConsistentWith(b, nil)
	}
}

// union NAME A B stores the union of two terms or two groups.
func (s *session) union(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: union NAME A B")
	}

	if a, ok := s.groups[args[1]]; ok {
		b, ok := s.groups[args[2]]
		if !ok {
			return fmt.Errorf("unknown group %q", args[2])
		}
		u, ok := a.Union(b)
		if !ok {
			return s.print("false.")
		}
		s.groups[args[0]] = u
		return s.print(u)
	}

	a, err := s.term(args[1])
	if err != nil {
		return err
	}
	b, err := s.term(args[2])
	if err != nil {
		return err
	}
	u, ok := engine.Union(a, b)
	if !ok {
		return s.print("false.")
	}
	s.terms[args[0]] = u
	return s.print(u)
}

func (s *session) term(name string) (engine.Term, error) {
	t, ok := s.terms[name]
	if !ok {
		return nil, fmt.Errorf("unknown term %q", name)
	}
	return t, nil
}

func (s *session) print(v interface{}) error {
	_, err := fmt.Fprintf(s.out, "%s\n", v)
	return err
}

func (s *session) printBool(b bool) error {
	_, err := fmt.Fprintf(s.out, "%t.\n", b)
	return err
}

// tokenize splits a command line on whitespace, keeping double-quoted
// sections together.
func tokenize(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inQuote := false
	pending := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			pending = true
		case !inQuote && (r == ' ' || r == '\t'):
			if pending {
				args = append(args, cur.String())
				cur.Reset()
				pending = false
			}
		default:
			cur.WriteRune(r)
			pending = true
		}
	}
	if inQuote {
		return nil, errors.New("unterminated quote")
	}
	if pending {
		args = append(args, cur.String())
	}
	return args, nil
}
