package automation

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/mazewalk/internal/config"
	"github.com/san-kum/mazewalk/internal/walker"
	"gopkg.in/yaml.v3"
)

// Suite is a scripted list of walks with their expected outcomes.
type Suite struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Cases       []config.Config `yaml:"cases"`
}

// CaseResult is the result of one case in a suite.
type CaseResult struct {
	Name     string
	Expected walker.Outcome
	Got      walker.Outcome
	Steps    int
	// Checked is false when the case carries no expectation.
	Checked bool
	Err     error
}

func (r CaseResult) Passed() bool {
	return r.Err == nil && (!r.Checked || r.Got == r.Expected)
}

// Report summarises a suite run.
type Report struct {
	Suite   string
	Results []CaseResult
}

func (r *Report) Failed() []CaseResult {
	failed := make([]CaseResult, 0)
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *Report) OK() bool { return len(r.Failed()) == 0 }

// LoadSuite loads a suite from a YAML file
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSuite(data)
}

func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	for i := range suite.Cases {
		if suite.Cases[i].Heading == "" {
			suite.Cases[i].Heading = config.DefaultHeading
		}
		if suite.Cases[i].Name == "" {
			suite.Cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return &suite, nil
}

// PresetSuite turns every preset into a case.
func PresetSuite() *Suite {
	names := config.ListPresets()
	suite := &Suite{
		Name:        "presets",
		Description: "reference mazes",
		Cases:       make([]config.Config, 0, len(names)),
	}
	for _, name := range names {
		suite.Cases = append(suite.Cases, *config.GetPreset(name))
	}
	return suite
}

// RunSuite walks every case. A case that fails to build is recorded with
// its error and does not stop the run.
func RunSuite(suite *Suite, log *slog.Logger) *Report {
	report := &Report{
		Suite:   suite.Name,
		Results: make([]CaseResult, 0, len(suite.Cases)),
	}

	for i := range suite.Cases {
		c := &suite.Cases[i]
		res := CaseResult{Name: c.Name}

		g, start, h, err := c.Build()
		if err != nil {
			res.Err = fmt.Errorf("case %d (%s): %w", i+1, c.Name, err)
			log.Warn("case rejected", "case", c.Name, "error", err)
			report.Results = append(report.Results, res)
			continue
		}

		res.Expected, res.Checked, _ = c.ExpectedOutcome()

		r := walker.New(g, walker.WithLogger(log)).Walk(start, h)
		res.Got = r.Outcome
		res.Steps = r.Steps

		log.Info("case finished",
			"case", c.Name,
			"outcome", r.Outcome.String(),
			"steps", r.Steps,
			"passed", res.Passed(),
		)
		report.Results = append(report.Results, res)
	}

	return report
}
