package checker

import (
	"encoding/json"
	"testing"

	"github.com/quantmind-br/grader-go/internal/document"
	"github.com/quantmind-br/grader-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoc map[string]bool

func (f fakeDoc) Has(selector string) bool { return f[selector] }

func TestValidate_PresentAndAbsent(t *testing.T) {
	doc := document.Parse([]byte(`<div><h1>x</h1></div>`))

	report := Validate(doc, []string{"h1", "h2"})

	assert.Equal(t, []string{"h1", "h2"}, report.Keys())
	h1, ok := report.Get("h1")
	assert.True(t, ok)
	assert.True(t, h1)
	h2, ok := report.Get("h2")
	assert.True(t, ok)
	assert.False(t, h2)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"h1": true, "h2": false}`, string(data))
}

func TestValidate_KeyOrderFollowsChecks(t *testing.T) {
	doc := fakeDoc{"b": true}
	checks := []string{"c", "a", "b"}

	report := Validate(doc, checks)

	assert.Equal(t, checks, report.Keys())
	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, `{"c":false,"a":false,"b":true}`, string(data))
}

func TestValidate_Duplicates(t *testing.T) {
	doc := fakeDoc{"h1": true}

	report := Validate(doc, []string{"h1", "p", "h1"})

	assert.Equal(t, 2, report.Len())
	assert.Equal(t, []string{"h1", "p"}, report.Keys())
}

func TestValidate_DoesNotMutateChecks(t *testing.T) {
	checks := []string{"z", "a"}
	Validate(fakeDoc{}, checks)
	assert.Equal(t, []string{"z", "a"}, checks)
}

func TestValidate_Empty(t *testing.T) {
	report := Validate(fakeDoc{}, nil)

	assert.Equal(t, 0, report.Len())
	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestValidate_InvalidSelectorIsFalse(t *testing.T) {
	doc := document.Parse([]byte(`<div><h1>x</h1></div>`))

	report := Validate(doc, []string{"div[", "h1"})

	present, ok := report.Get("div[")
	assert.True(t, ok)
	assert.False(t, present)
	assert.Equal(t, 1, report.Passed())
}

func TestSortChecks(t *testing.T) {
	checks := []string{"h2", "#header a", "h1", "a"}

	sorted := SortChecks(checks)

	assert.Equal(t, []string{"#header a", "a", "h1", "h2"}, sorted)
	assert.Equal(t, []string{"h2", "#header a", "h1", "a"}, checks)
	assert.Equal(t, sorted, SortChecks(sorted))
}

func TestSortedValidationIsIdempotent(t *testing.T) {
	doc := document.Parse([]byte(`<section><h2>a</h2><p class="x">b</p></section>`))
	checks := []string{"p.x", "h2", "h1", "section"}

	once := Validate(doc, SortChecks(checks))
	twice := Validate(doc, SortChecks(SortChecks(checks)))

	a, err := json.Marshal(once)
	require.NoError(t, err)
	b, err := json.Marshal(twice)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestInvalidChecks(t *testing.T) {
	invalid := InvalidChecks([]string{"h1", "div[", "a > b", "p:bogus("})

	require.Len(t, invalid, 2)
	assert.Equal(t, "div[", invalid[0].Selector)
	assert.Equal(t, "p:bogus(", invalid[1].Selector)
	assert.ErrorIs(t, invalid[0], domain.ErrInvalidSelector)

	assert.Empty(t, InvalidChecks([]string{"h1", "#header a"}))
}

func TestReport_SetOverwritesInPlace(t *testing.T) {
	r := NewReport()
	r.Set("a", false)
	r.Set("b", true)
	r.Set("a", true)

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	assert.Equal(t, map[string]bool{"a": true, "b": true}, r.Map())
	assert.Equal(t, 2, r.Passed())
}

func TestReport_KeysIsACopy(t *testing.T) {
	r := NewReport()
	r.Set("a", true)

	keys := r.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Keys())
}

func TestReport_MarshalDoesNotEscapeSelectors(t *testing.T) {
	r := NewReport()
	r.Set("div > a[href^='http']", true)
	r.Set(`a[title="q"]`, false)

	data, err := r.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"div > a[href^='http']":true`)
	assert.Contains(t, string(data), `"a[title=\"q\"]":false`)
}

func TestReport_RoundTrip(t *testing.T) {
	r := NewReport()
	r.Set("h2", false)
	r.Set("#header a", true)
	r.Set("h1", true)

	data, err := json.MarshalIndent(r, "", "    ")
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Keys(), decoded.Keys())
	assert.Equal(t, r.Map(), decoded.Map())

	var plain map[string]bool
	require.NoError(t, json.Unmarshal(data, &plain))
	assert.Equal(t, r.Map(), plain)
}

func TestReport_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `["h1"]`},
		{"non-bool value", `{"h1": "yes"}`},
		{"truncated", `{"h1": true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Report
			assert.Error(t, json.Unmarshal([]byte(tt.data), &r))
		})
	}
}
