package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/imputelab/ampute"
	"github.com/katalvlaran/imputelab/bench"
)

// config mirrors the YAML configuration surface of the run command. Every
// field has a flag counterpart; flags win over the file when both are set.
type config struct {
	// Dataset is a registry name, a CSV/TSV path, or "synthetic".
	Dataset string `yaml:"dataset"`

	// Scale standardizes columns before benchmarking.
	Scale bool `yaml:"scale"`

	// Fractions are the missingness rates to sweep, each in (0,1).
	Fractions []float64 `yaml:"fractions"`

	// Mechanisms are acronyms: MCAR, MAR, MNAR. Empty means all three.
	Mechanisms []string `yaml:"mechanisms"`

	// Repetitions is the number of amputation draws per cell.
	Repetitions int `yaml:"repetitions"`

	// Seed drives every RNG stream; 0 keeps the reproducible default.
	Seed int64 `yaml:"seed"`

	// Workers caps parallel cell execution; <= 1 runs sequentially.
	Workers int `yaml:"workers"`

	// Out is the directory for the CSV table and the plots.
	Out string `yaml:"out"`

	// Synthetic sizes the generated table when Dataset is "synthetic".
	Synthetic struct {
		Rows int `yaml:"rows"`
		Cols int `yaml:"cols"`
	} `yaml:"synthetic"`
}

// defaultConfig matches the classical teaching sweep on synthetic data.
func defaultConfig() config {
	var c config
	c.Dataset = "synthetic"
	c.Fractions = []float64{0.2, 0.5, 0.7}
	c.Repetitions = 5
	c.Out = "results"
	c.Synthetic.Rows = 1000
	c.Synthetic.Cols = 10
	return c
}

// loadConfig overlays the YAML file at path (when non-empty) onto defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// benchOptions translates the config into bench.Options.
func (c config) benchOptions() (bench.Options, error) {
	o := bench.DefaultOptions()
	o.Fractions = c.Fractions
	o.Repetitions = c.Repetitions
	o.Seed = c.Seed
	o.Workers = c.Workers

	if len(c.Mechanisms) > 0 {
		mechs := make([]ampute.Mechanism, 0, len(c.Mechanisms))
		for _, s := range c.Mechanisms {
			m, err := ampute.ParseMechanism(s)
			if err != nil {
				return o, err
			}
			mechs = append(mechs, m)
		}
		o.Mechanisms = mechs
	}
	return o, nil
}
