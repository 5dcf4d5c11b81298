/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for the HTML learning report. Renders a report from a
real learning run and inspects the generated document structure with
goquery: header, statistics, observation table, and hypothesis table.
*/

package reporting_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/oracle"
	"github.com/kleascm/akaylee-learner/pkg/reporting"
	"github.com/kleascm/akaylee-learner/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContainsAB learns "words containing ab" and returns the learner and
// confirmed hypothesis for report building.
func runContainsAB(t *testing.T) (*learner.BaselineLStar[string], *automata.DFA[string], int) {
	alphabet, err := words.NewAlphabet("a", "b")
	require.NoError(t, err)

	target := automata.NewDFA(alphabet)
	q0 := target.AddInitialState(false)
	q1 := target.AddState(false)
	q2 := target.AddState(true)
	a, _ := alphabet.IndexOf("a")
	b, _ := alphabet.IndexOf("b")
	target.SetTransition(q0, a, q1)
	target.SetTransition(q0, b, q0)
	target.SetTransition(q1, a, q1)
	target.SetTransition(q1, b, q2)
	target.SetTransition(q2, a, q2)
	target.SetTransition(q2, b, q2)

	membership, err := oracle.NewSimulatorOracle(target)
	require.NoError(t, err)
	equivalence, err := oracle.NewProductEquivalenceOracle(target)
	require.NoError(t, err)
	lstar, err := learner.New(alphabet, membership)
	require.NoError(t, err)

	hypothesis, rounds, err := learner.Run(context.Background(), lstar, equivalence, 10)
	require.NoError(t, err)
	return lstar, hypothesis, rounds
}

func TestRenderReportStructure(t *testing.T) {
	lstar, hypothesis, rounds := runContainsAB(t)

	data, err := reporting.BuildReportData("Contains AB", lstar.ID(), rounds, lstar.Stats(), lstar.ObservationTable(), hypothesis)
	require.NoError(t, err)

	generator, err := reporting.NewReportGenerator(t.TempDir(), nil)
	require.NoError(t, err)

	html, err := generator.RenderReport(data)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	// Header carries the run title
	assert.Equal(t, "Contains AB", doc.Find(".header h1").Text())

	// Observation table: one header cell per suffix plus the label column
	suffixCount := len(lstar.ObservationTable().Suffixes())
	assert.Equal(t, suffixCount+1, doc.Find("#observation-table thead th").Length())

	// One row per short and long prefix
	shortCount := len(lstar.ObservationTable().ShortPrefixes())
	longCount := len(lstar.ObservationTable().LongPrefixes())
	assert.Equal(t, shortCount, doc.Find("#observation-table tbody tr.short").Length())
	assert.Equal(t, longCount, doc.Find("#observation-table tbody tr.long").Length())

	// Hypothesis table: one row per state
	assert.Equal(t, hypothesis.NumStates(), doc.Find("#hypothesis-table tbody tr").Length())

	// Exactly one state is marked as the start state
	assert.Equal(t, 1, doc.Find("#hypothesis-table td.initial").Length())
}

func TestGenerateReportWritesFile(t *testing.T) {
	lstar, hypothesis, rounds := runContainsAB(t)

	data, err := reporting.BuildReportData("Contains AB", lstar.ID(), rounds, lstar.Stats(), lstar.ObservationTable(), hypothesis)
	require.NoError(t, err)

	outputDir := t.TempDir()
	generator, err := reporting.NewReportGenerator(outputDir, nil)
	require.NoError(t, err)

	path, err := generator.GenerateReport(data)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Contains AB")
	assert.Contains(t, string(content), "observation-table")
}
