package rules_test

import (
	"encoding/json"
	"testing"

	"governance/internal/core/domain/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity(t *testing.T) {
	require.NoError(t, rules.SeverityError.Validate())
	require.NoError(t, rules.SeverityWarning.Validate())
	require.Error(t, rules.Severity(0).Validate())
	assert.Equal(t, "unknown", rules.Severity(7).String())

	raw, err := json.Marshal(rules.NewWarning("dueDate", rules.CodeDueDateTooFar, "far"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"field":"dueDate","message":"far","code":"DUE_DATE_TOO_FAR","severity":"warning"}`, string(raw))

	var v rules.Violation
	require.NoError(t, json.Unmarshal(raw, &v))
	assert.Equal(t, rules.SeverityWarning, v.Severity)
	require.Error(t, json.Unmarshal([]byte(`{"severity":"fatal"}`), &v))
}

func TestAggregateViolations(t *testing.T) {
	e1 := rules.NewError("a", rules.CodeInvalidQuantity, "e1")
	w1 := rules.NewWarning("b", rules.CodeLowStock, "w1")
	e2 := rules.NewError("c", rules.CodeNegativeStock, "e2")
	w2 := rules.NewWarning("d", rules.CodeHighQuantity, "w2")
	odd := rules.Violation{Field: "x", Code: "ODD", Message: "odd"}

	t.Run("partition is complete and disjoint", func(t *testing.T) {
		inputs := [][]rules.Violation{
			nil,
			{e1},
			{w1},
			{e1, w1, e2, w2},
			{w2, w1, w2, e2, odd},
		}
		for _, in := range inputs {
			a := rules.AggregateViolations(in)
			assert.Len(t, in, len(a.Errors)+len(a.Warnings))
			for _, v := range a.Errors {
				assert.NotEqual(t, rules.SeverityWarning, v.Severity)
			}
			for _, v := range a.Warnings {
				assert.Equal(t, rules.SeverityWarning, v.Severity)
			}
		}
	})

	t.Run("unrecognized severity counts as error", func(t *testing.T) {
		assert.True(t, w1.IsWarning())
		assert.False(t, e1.IsWarning())
		assert.False(t, odd.IsWarning())

		a := rules.AggregateViolations([]rules.Violation{odd, w1})
		assert.Equal(t, []rules.Violation{odd}, a.Errors)
		assert.Equal(t, []rules.Violation{w1}, a.Warnings)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		a := rules.AggregateViolations([]rules.Violation{w2, e1, w1, e2})
		assert.Equal(t, []rules.Violation{e1, e2}, a.Errors)
		assert.Equal(t, []rules.Violation{w2, w1}, a.Warnings)
	})

	t.Run("unknown severity fails closed", func(t *testing.T) {
		a := rules.AggregateViolations([]rules.Violation{odd})
		assert.Equal(t, []rules.Violation{odd}, a.Errors)
		assert.Empty(t, a.Warnings)
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		a := rules.AggregateViolations([]rules.Violation{w1, w1})
		assert.Len(t, a.Warnings, 2)
	})

	assert.Equal(t, "e1, e2", rules.JoinMessages([]rules.Violation{e1, e2}))
	assert.True(t, rules.HasCode([]rules.Violation{e1, w1}, rules.CodeLowStock))
	assert.False(t, rules.HasCode(nil, rules.CodeLowStock))
}

func TestDecide(t *testing.T) {
	e := rules.NewError("f", rules.CodeInvalidTotalCalculation, "bad total")
	w := rules.NewWarning("f", rules.CodeLowProfitMargin, "low margin")

	testCases := []struct {
		name    string
		in      []rules.Violation
		policy  rules.Policy
		blocked bool
		reasons []rules.Violation
	}{
		{"default policy passes warnings", []rules.Violation{w, w}, rules.DefaultPolicy(), false, nil},
		{"default policy blocks one error", []rules.Violation{e}, rules.DefaultPolicy(), true, []rules.Violation{e}},
		{"default policy passes nothing", nil, rules.DefaultPolicy(), false, nil},
		{"errors block before warnings", []rules.Violation{w, e}, rules.Policy{BlockOnErrors: true, BlockOnWarnings: true}, true, []rules.Violation{e}},
		{"strict policy blocks warnings", []rules.Violation{w}, rules.Policy{BlockOnErrors: true, BlockOnWarnings: true}, true, []rules.Violation{w}},
		{"lenient policy passes errors", []rules.Violation{e}, rules.Policy{}, false, nil},
		{"warning-only policy blocks on warnings", []rules.Violation{e, w}, rules.Policy{BlockOnWarnings: true}, true, []rules.Violation{w}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := rules.Enforce(tc.in, tc.policy)

			assert.Equal(t, tc.blocked, r.Blocked)
			assert.Equal(t, tc.reasons, r.Reasons())
			assert.Len(t, r.Violations(), len(tc.in))
			assert.NotNil(t, r.Errors)
			assert.NotNil(t, r.Warnings)
		})
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := rules.DefaultPolicy()
	assert.True(t, p.BlockOnErrors)
	assert.False(t, p.BlockOnWarnings)
}
