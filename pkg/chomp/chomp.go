package chomp

import (
	"fmt"
	"strings"

	"nickandperla.net/chomp/internal/arena"
	"nickandperla.net/chomp/internal/element"
	"nickandperla.net/chomp/internal/lang"
	"nickandperla.net/chomp/internal/meta"
	"nickandperla.net/chomp/internal/parse"
	"nickandperla.net/chomp/internal/store"
)

// Kind identifies a binding's value type.
type Kind int

const (
	// Int64 is a 64-bit integer binding.
	Int64 Kind = iota
	// Float64 is an IEEE-754 double binding.
	Float64
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Float64 {
		return "float64"
	}
	return "int64"
}

// Binding is one variable with its final value. The engine upserts by
// name, so a program yields one Binding per distinct name, in first-seen
// order.
type Binding struct {
	Name    string
	Kind    Kind
	Int64   int64
	Float64 float64
}

// String renders the binding as `name = value`.
func (b Binding) String() string {
	if b.Kind == Float64 {
		return fmt.Sprintf("%s = %g", b.Name, b.Float64)
	}
	return fmt.Sprintf("%s = %d", b.Name, b.Int64)
}

// Result is the observable outcome of a parse: the success flag, the
// unconsumed remainder (empty on full success), the chomp scratch of a
// partial pipeline, and the ordered distinct bindings.
type Result struct {
	Success   bool
	Remaining string
	Chomp     string
	Bindings  []Binding
}

// Runtime is the chomp engine with its configured diagnostics and run
// history. The zero configuration discards diagnostics and keeps no
// history.
type Runtime struct {
	logger  Logger
	color   bool
	history store.Store
}

// New creates a new runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run parses a full program: repeated assignment statements to EOF or
// first failure. The parse itself never returns an error; failure is
// Result.Success=false with the offending remainder. The error reports
// history persistence problems only.
func (r *Runtime) Run(input string) (Result, error) {
	st := r.state(input).Parse()
	res := resultOf(st)

	var err error
	if r.history != nil {
		err = r.history.Save(store.Run{
			Input:     input,
			Success:   res.Success,
			Remaining: res.Remaining,
			Bindings:  renderBindings(res.Bindings),
		})
	}
	return res, err
}

// RunParser applies one named parser to a fresh state over input, the
// composability/testing entry point. The registered names are those of
// parse.Names.
func (r *Runtime) RunParser(name, input string) (Result, error) {
	fn, ok := parse.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown parser: %s (have %s)", name, strings.Join(parse.Names(), ", "))
	}
	return resultOf(fn(r.state(input))), nil
}

// Program is a compiled meta-language description, replayable against any
// number of inputs.
type Program struct {
	descs *arena.Arena[lang.Descriptor]
}

// Compile compiles a meta-language description string.
func Compile(dsl string) (*Program, error) {
	descs, err := meta.Compile(dsl)
	if err != nil {
		return nil, err
	}
	return &Program{descs: descs}, nil
}

// Len returns the number of compiled descriptors.
func (p *Program) Len() int {
	return p.descs.Len()
}

// Run replays the compiled description against input.
func (p *Program) Run(input string) Result {
	return resultOf(meta.Run(p.descs, input))
}

// RunMeta compiles dsl and replays it against input in one step.
func (r *Runtime) RunMeta(dsl, input string) (Result, error) {
	p, err := Compile(dsl)
	if err != nil {
		return Result{}, err
	}
	return p.Run(input), nil
}

// History returns up to limit recorded runs, newest first.
func (r *Runtime) History(limit int) ([]store.Run, error) {
	if r.history == nil {
		return nil, nil
	}
	return r.history.Recent(limit)
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.history != nil {
		return r.history.Close()
	}
	return nil
}

func (r *Runtime) state(input string) parse.State {
	s := parse.New(input)
	if r.logger != nil {
		s = s.WithLogger(r.logger)
	}
	return s.WithColor(r.color)
}

func resultOf(st parse.State) Result {
	res := Result{
		Success:   st.Success,
		Remaining: st.InputRemaining,
		Chomp:     st.Chomp,
	}
	for _, el := range st.Vars() {
		b := Binding{Name: el.Name}
		if el.Num == element.Float64 {
			b.Kind = Float64
			b.Float64 = el.Float
		} else {
			b.Int64 = el.Int
		}
		res.Bindings = append(res.Bindings, b)
	}
	return res
}

func renderBindings(bs []Binding) string {
	var sb strings.Builder
	for _, b := range bs {
		sb.WriteString(b.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
