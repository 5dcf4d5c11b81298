/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: HTML report system for the Akaylee Learner. Generates beautiful
web reports of a learning run: membership query statistics, the final
observation table, and the hypothesis automaton with its transition table.
*/

package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/akaylee-learner/pkg/automata"
	"github.com/kleascm/akaylee-learner/pkg/learner"
	"github.com/kleascm/akaylee-learner/pkg/table"
	"github.com/sirupsen/logrus"
)

// ReportGenerator creates HTML learning reports
type ReportGenerator struct {
	outputDir string
	logger    *logrus.Logger
	templates *template.Template
}

// ReportData contains all data for report generation
type ReportData struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
	LearnerID   string    `json:"learner_id"`

	Rounds      int   `json:"rounds"`
	Batches     int64 `json:"batches"`
	Queries     int64 `json:"queries"`
	Refinements int64 `json:"refinements"`

	Suffixes  []string    `json:"suffixes"`
	ShortRows []ReportRow `json:"short_rows"`
	LongRows  []ReportRow `json:"long_rows"`

	Symbols []string      `json:"symbols"`
	States  []ReportState `json:"states"`
}

// ReportRow is one rendered observation table row
type ReportRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// ReportState is one rendered hypothesis state with its outgoing transitions
type ReportState struct {
	ID        int   `json:"id"`
	Initial   bool  `json:"initial"`
	Accepting bool  `json:"accepting"`
	Targets   []int `json:"targets"`
}

// NewReportGenerator creates a report generator writing into outputDir.
func NewReportGenerator(outputDir string, logger *logrus.Logger) (*ReportGenerator, error) {
	if logger == nil {
		logger = logrus.New()
	}
	templates, err := template.New("report").Funcs(template.FuncMap{
		"add1": func(i int) int { return i + 1 },
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &ReportGenerator{
		outputDir: outputDir,
		logger:    logger,
		templates: templates,
	}, nil
}

// BuildReportData assembles report data from a finished learning run.
func BuildReportData[I comparable](title string, learnerID string, rounds int, stats learner.Stats, view table.View[I, bool], hypothesis *automata.DFA[I]) (*ReportData, error) {
	data := &ReportData{
		Title:       title,
		GeneratedAt: time.Now(),
		Version:     "1.0.0",
		LearnerID:   learnerID,
		Rounds:      rounds,
		Batches:     stats.Batches,
		Queries:     stats.Queries,
		Refinements: stats.Refinements,
	}

	for _, suffix := range view.Suffixes() {
		data.Suffixes = append(data.Suffixes, suffix.String())
	}

	for _, prefix := range view.ShortPrefixes() {
		row, err := view.RowOf(prefix)
		if err != nil {
			return nil, err
		}
		data.ShortRows = append(data.ShortRows, renderRow(row))
	}
	for _, prefix := range view.LongPrefixes() {
		row, err := view.RowOf(prefix)
		if err != nil {
			return nil, err
		}
		data.LongRows = append(data.LongRows, renderRow(row))
	}

	alphabet := hypothesis.Alphabet()
	for _, sym := range alphabet.Symbols() {
		data.Symbols = append(data.Symbols, fmt.Sprintf("%v", sym))
	}
	for state := 0; state < hypothesis.NumStates(); state++ {
		rs := ReportState{
			ID:        state,
			Initial:   state == hypothesis.InitialState(),
			Accepting: hypothesis.IsAccepting(state),
		}
		for symbolIndex := 0; symbolIndex < alphabet.Size(); symbolIndex++ {
			rs.Targets = append(rs.Targets, hypothesis.Transition(state, symbolIndex))
		}
		data.States = append(data.States, rs)
	}

	return data, nil
}

func renderRow[I comparable](row *table.Row[I, bool]) ReportRow {
	out := ReportRow{Label: row.Label().String()}
	for _, value := range row.Values() {
		if value {
			out.Cells = append(out.Cells, "1")
		} else {
			out.Cells = append(out.Cells, "0")
		}
	}
	return out
}

// GenerateReport renders the report and writes it as a timestamped HTML file.
// Returns the path of the written report.
func (g *ReportGenerator) GenerateReport(data *ReportData) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := data.GeneratedAt.Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("akaylee-learner_report_%s.html", timestamp)
	path := filepath.Join(g.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := g.templates.Execute(file, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"path":    path,
		"states":  len(data.States),
		"queries": data.Queries,
	}).Info("Learning report generated")

	return path, nil
}

// RenderReport renders the report into an in-memory string. Used by callers
// that want to serve or inspect the HTML without touching the filesystem.
func (g *ReportGenerator) RenderReport(data *ReportData) (string, error) {
	var buf strings.Builder
	if err := g.templates.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
