// Package script runs sequences of map operations read from YAML.
//
// A script names the key ordering and a list of operations:
//
//	order: numeric
//	ops:
//	  - {op: insert, key: "50", value: fifty}
//	  - {op: upper-bound, key: "45"}
//	  - {op: walk}
//
// Each operation writes one line of output, except walk,
// which writes one line per entry.
package script

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/astaxie/beego/logs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jba/treemap"
)

// Orders.
const (
	Numeric = "numeric"
	Lexical = "lexical"
)

// Operations.
const (
	OpInsert     = "insert"
	OpSearch     = "search"
	OpUpperBound = "upper-bound"
	OpRemove     = "remove"
	OpFirst      = "first"
	OpNext       = "next"
	OpPrev       = "prev"
	OpWalk       = "walk"
	OpLen        = "len"
)

// keyed reports which operations need a key.
var keyed = map[string]bool{
	OpInsert:     true,
	OpSearch:     true,
	OpUpperBound: true,
	OpRemove:     true,
	OpFirst:      false,
	OpNext:       false,
	OpPrev:       false,
	OpWalk:       false,
	OpLen:        false,
}

// An Op is one step of a script.
type Op struct {
	Op    string  `yaml:"op"`
	Key   *string `yaml:"key,omitempty"`
	Value string  `yaml:"value,omitempty"`
}

// A Script is a validated list of operations.
type Script struct {
	Order string `yaml:"order"`
	Ops   []Op   `yaml:"ops"`

	less func(a, b string) bool
}

// Load reads and validates a script.
// An empty order defaults to lexical.
func Load(r io.Reader) (*Script, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	var s Script
	if err := yaml.UnmarshalStrict(b, &s); err != nil {
		return nil, errors.Wrap(err, "decoding script")
	}
	if err := s.SetOrder(s.Order); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetOrder changes the key ordering of s to order and revalidates it.
func (s *Script) SetOrder(order string) error {
	switch order {
	case "", Lexical:
		s.Order = Lexical
		s.less = func(a, b string) bool { return a < b }
	case Numeric:
		s.Order = Numeric
		s.less = func(a, b string) bool { return number(a) < number(b) }
	default:
		return errors.Errorf("unknown order %q", order)
	}
	return s.validate()
}

func (s *Script) validate() error {
	for i, op := range s.Ops {
		need, ok := keyed[op.Op]
		if !ok {
			return errors.Errorf("op %d: unknown operation %q", i+1, op.Op)
		}
		if need != (op.Key != nil) {
			if need {
				return errors.Errorf("op %d: %s needs a key", i+1, op.Op)
			}
			return errors.Errorf("op %d: %s takes no key", i+1, op.Op)
		}
		if s.Order == Numeric && op.Key != nil {
			f, err := strconv.ParseFloat(*op.Key, 64)
			if err != nil {
				return errors.Wrapf(err, "op %d: key %q", i+1, *op.Key)
			}
			if math.IsNaN(f) {
				return errors.Errorf("op %d: key %q is not ordered", i+1, *op.Key)
			}
		}
	}
	return nil
}

// number parses a key already checked by validate.
func number(k string) float64 {
	f, _ := strconv.ParseFloat(k, 64)
	return f
}

// Run executes the operations of s against a new map, writing results to w.
// log receives one debug line per operation.
func (s *Script) Run(w io.Writer, log *logs.BeeLogger) (*treemap.Map[string, string], error) {
	m := treemap.New[string, string](s.less)
	for i, op := range s.Ops {
		log.Debug("op %d: %s %s", i+1, op.Op, op.key())
		if err := s.step(w, m, op); err != nil {
			return m, errors.Wrapf(err, "op %d", i+1)
		}
	}
	log.Info("ran %d ops, %d entries remain", len(s.Ops), m.Len())
	return m, nil
}

func (op Op) key() string {
	if op.Key == nil {
		return ""
	}
	return *op.Key
}

func (s *Script) step(w io.Writer, m *treemap.Map[string, string], op Op) error {
	var err error
	say := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format+"\n", args...)
		}
	}
	entry := func(e treemap.Entry[string, string], ok bool) {
		if ok {
			say("%s=%s", e.Key, e.Value)
		} else {
			say("absent")
		}
	}

	switch op.Op {
	case OpInsert:
		if m.Insert(op.key(), op.Value) {
			say("inserted %s", op.key())
		} else {
			say("duplicate %s", op.key())
		}
	case OpSearch:
		entry(m.Search(op.key()))
	case OpUpperBound:
		entry(m.UpperBound(op.key()))
	case OpRemove:
		if m.Remove(op.key()) {
			say("removed %s", op.key())
		} else {
			say("missing %s", op.key())
		}
	case OpFirst:
		entry(m.First())
	case OpNext:
		entry(m.Next())
	case OpPrev:
		entry(m.Prev())
	case OpWalk:
		for k, v := range m.All() {
			say("%s=%s", k, v)
		}
	case OpLen:
		say("%d", m.Len())
	default:
		return errors.Errorf("unknown operation %q", op.Op)
	}
	return err
}
