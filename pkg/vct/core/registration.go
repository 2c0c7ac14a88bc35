package core

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

// Body is the code of a single test case. The *T handle is how checks reach
// the runner.
type Body = func(t *T)

type TestCase struct {
	Name string
	Body Body
}

// Suite is a named, ordered group of test cases. Cases keep declaration
// order.
type Suite struct {
	Name  string
	Cases []TestCase
}

var (
	ErrFrozen  = errors.New("registry is frozen")
	ErrNilBody = errors.New("test body is nil")

	entityNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// RegistrationError is returned when a test case cannot be added to a
// registry.
type RegistrationError struct {
	Suite string
	Case  string
	Err   error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("cannot register test case '%s': %v", QualifiedName(e.Suite, e.Case), e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Checks that the name of a suite or test case is a valid identifier, so that
// "Suite.Case" stays unambiguous in reports.
func ValidateEntityName(name string, kind string) error {
	if !entityNameRegexp.MatchString(name) {
		return fmt.Errorf("%s name '%s' is not a valid identifier", kind, name)
	}

	return nil
}

// Registry maps suite names to suites. Suites iterate in the order they were
// first seen. A registry is populated before a run starts, usually from
// package init functions, and is frozen by the runner.
//
// The zero value is an empty registry ready to use. Registry is not safe for
// concurrent use.
type Registry struct {
	order  []string
	suites map[string]*Suite
	frozen bool
}

func NewRegistry() *Registry {
	return &Registry{
		order:  make([]string, 0),
		suites: make(map[string]*Suite),
	}
}

// Add appends a test case to the named suite, creating the suite if it does
// not exist yet. Case names do not need to be unique; duplicates all run.
func (r *Registry) Add(suite, name string, body Body) error {
	wrap := func(err error) error {
		return &RegistrationError{Suite: suite, Case: name, Err: err}
	}

	if r.frozen {
		return wrap(ErrFrozen)
	}

	if err := ValidateEntityName(suite, "suite"); err != nil {
		return wrap(err)
	}

	if err := ValidateEntityName(name, "test case"); err != nil {
		return wrap(err)
	}

	if body == nil {
		return wrap(ErrNilBody)
	}

	if r.suites == nil {
		r.suites = make(map[string]*Suite)
	}

	s, ok := r.suites[suite]
	if !ok {
		s = &Suite{Name: suite}
		r.suites[suite] = s
		r.order = append(r.order, suite)
	}

	s.Cases = append(s.Cases, TestCase{Name: name, Body: body})
	return nil
}

// Register is like Add but panics on error. It is meant to be called from
// init functions, where a bad registration is a programming error.
func (r *Registry) Register(suite, name string, body Body) {
	if err := r.Add(suite, name, body); err != nil {
		panic(err)
	}
}

// Suites returns a snapshot of all suites in insertion order. Modifying the
// result does not affect the registry.
func (r *Registry) Suites() []Suite {
	out := make([]Suite, 0, len(r.order))
	for _, name := range r.order {
		s := r.suites[name]
		out = append(out, Suite{
			Name:  s.Name,
			Cases: slices.Clone(s.Cases),
		})
	}

	return out
}

// Len returns the total number of registered test cases.
func (r *Registry) Len() int {
	total := 0
	for _, s := range r.suites {
		total += len(s.Cases)
	}

	return total
}

// Freeze makes the registry read-only. Any later Add fails with ErrFrozen.
func (r *Registry) Freeze() {
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	return r.frozen
}
