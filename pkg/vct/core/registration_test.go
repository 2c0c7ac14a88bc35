package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*T) {}

func suiteNames(suites []Suite) []string {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	return names
}

func caseNames(s Suite) []string {
	names := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		names[i] = c.Name
	}
	return names
}

func TestRegistryPreservesOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("Zeta", "B", noop)
	r.Register("Alpha", "Z", noop)
	r.Register("Zeta", "A", noop)
	r.Register("Alpha", "A", noop)
	r.Register("Mid", "Only", noop)

	suites := r.Suites()
	require.Len(t, suites, 3)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, suiteNames(suites))
	assert.Equal(t, []string{"B", "A"}, caseNames(suites[0]))
	assert.Equal(t, []string{"Z", "A"}, caseNames(suites[1]))
	assert.Equal(t, []string{"Only"}, caseNames(suites[2]))
	assert.Equal(t, 5, r.Len())
}

func TestRegistryAllowsDuplicateCaseNames(t *testing.T) {
	r := NewRegistry()
	r.Register("S", "Same", noop)
	r.Register("S", "Same", noop)

	suites := r.Suites()
	require.Len(t, suites, 1)
	assert.Equal(t, []string{"Same", "Same"}, caseNames(suites[0]))
}

func TestRegistrySnapshotIsIsolated(t *testing.T) {
	r := NewRegistry()
	r.Register("S", "One", noop)

	snapshot := r.Suites()
	snapshot[0].Cases[0].Name = "Changed"
	snapshot[0].Cases = append(snapshot[0].Cases, TestCase{Name: "Extra", Body: noop})

	again := r.Suites()
	assert.Equal(t, []string{"One"}, caseNames(again[0]))
}

func TestRegistryAddErrors(t *testing.T) {
	tests := []struct {
		name  string
		suite string
		test  string
		body  Body
	}{
		{name: "empty suite", suite: "", test: "A", body: noop},
		{name: "dotted suite", suite: "a.b", test: "A", body: noop},
		{name: "leading digit", suite: "S", test: "1A", body: noop},
		{name: "space in case", suite: "S", test: "my case", body: noop},
		{name: "nil body", suite: "S", test: "A", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Add(tt.suite, tt.test, tt.body)
			require.Error(t, err)

			var regErr *RegistrationError
			require.ErrorAs(t, err, &regErr)
			assert.Equal(t, tt.suite, regErr.Suite)
			assert.Equal(t, tt.test, regErr.Case)
			assert.Empty(t, r.Suites())
		})
	}
}

func TestRegistryFreeze(t *testing.T) {
	r := NewRegistry()
	r.Register("S", "A", noop)
	r.Freeze()

	assert.True(t, r.Frozen())
	err := r.Add("S", "B", noop)
	assert.ErrorIs(t, err, ErrFrozen)
	assert.Equal(t, 1, r.Len())

	assert.Panics(t, func() { r.Register("S", "C", noop) })
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "Suite.Case", QualifiedName("Suite", "Case"))
	assert.Equal(t, "Suite.Case", NewT("Suite", "Case", nil).Name())
}

func TestZeroValueRegistry(t *testing.T) {
	var r Registry
	assert.Empty(t, r.Suites())
	assert.Equal(t, 0, r.Len())

	require.NoError(t, r.Add("Suite", "Case", noop))
	r.Register("Suite", "Other", noop)

	suites := r.Suites()
	require.Len(t, suites, 1)
	assert.Equal(t, []string{"Case", "Other"}, caseNames(suites[0]))
}
