package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/mazewalk/internal/grid"
	"github.com/san-kum/mazewalk/internal/walker"
	"gopkg.in/yaml.v3"
)

const DefaultHeading = ">"

var (
	ErrNoRows        = errors.New("config: map has no rows")
	ErrInvalidExpect = errors.New("config: invalid expected outcome")
)

// Config describes one walk: the map, where the robot starts and, optionally,
// how the walk should end. The start is the flat index when Start is set and
// (Row, Col) otherwise.
type Config struct {
	Name    string   `yaml:"name,omitempty"`
	Rows    []string `yaml:"rows"`
	Width   int      `yaml:"width,omitempty"`
	Height  int      `yaml:"height,omitempty"`
	Start   *int     `yaml:"start,omitempty"`
	Row     int      `yaml:"row,omitempty"`
	Col     int      `yaml:"col,omitempty"`
	Heading string   `yaml:"heading"`
	Expect  string   `yaml:"expect,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Heading: DefaultHeading,
	}
}

// Index returns a pointer to i, for Config.Start.
func Index(i int) *int { return &i }

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Rows = append([]string(nil), c.Rows...)
	if c.Start != nil {
		cp.Start = Index(*c.Start)
	}
	return &cp
}

// Validate checks everything Build needs except the start position; a start
// outside the map is a valid walk that ends out of bounds.
func (c *Config) Validate() error {
	_, _, _, err := c.Build()
	return err
}

// Dimensions resolves width and height, deriving missing values from the rows.
func (c *Config) Dimensions() (width, height int) {
	total := 0
	for _, r := range c.Rows {
		total += len(r)
	}

	width, height = c.Width, c.Height
	switch {
	case width == 0 && height == 0:
		if len(c.Rows) > 0 {
			width, height = len(c.Rows[0]), len(c.Rows)
		}
	case width == 0:
		width = total / height
	case height == 0:
		height = total / width
	}
	return width, height
}

// Build constructs the grid, start coordinate and heading.
func (c *Config) Build() (*grid.Grid, grid.Coord, grid.Heading, error) {
	if len(c.Rows) == 0 {
		return nil, grid.Coord{}, 0, ErrNoRows
	}

	h, err := grid.ParseHeadingName(c.Heading)
	if err != nil {
		return nil, grid.Coord{}, 0, fmt.Errorf("config: %w", err)
	}

	if _, _, err := c.ExpectedOutcome(); err != nil {
		return nil, grid.Coord{}, 0, err
	}

	var g *grid.Grid
	if c.Width == 0 && c.Height == 0 {
		g, err = grid.FromRows(c.Rows)
	} else if c.Width < 0 || c.Height < 0 {
		err = grid.ErrEmptyGrid
	} else {
		w, ht := c.Dimensions()
		g, err = grid.New(c.Rows, w, ht)
	}
	if err != nil {
		return nil, grid.Coord{}, 0, fmt.Errorf("config: %w", err)
	}

	start := grid.Coord{Row: c.Row, Col: c.Col}
	if c.Start != nil {
		start = g.ToCoordinate(*c.Start)
	}

	return g, start, h, nil
}

// ExpectedOutcome parses Expect. ok is false when no expectation is set.
func (c *Config) ExpectedOutcome() (walker.Outcome, bool, error) {
	if c.Expect == "" {
		return walker.Running, false, nil
	}
	o, err := walker.ParseOutcome(c.Expect)
	if err != nil || !o.Terminal() {
		return walker.Running, false, fmt.Errorf("%w: %q", ErrInvalidExpect, c.Expect)
	}
	return o, true, nil
}
