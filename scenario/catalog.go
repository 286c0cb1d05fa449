package scenario

import (
	// embed the default catalog
	_ "embed"
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libgrowth/growth"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Reference struct {
	Key    string        `yaml:"key"`
	Name   string        `yaml:"name"`
	Volume growth.Volume `yaml:"volume"`
}

type Scenario struct {
	Key       string   `yaml:"key"`
	Title     string   `yaml:"title"`
	Label     string   `yaml:"label"`
	Initial   string   `yaml:"initial"`
	Target    string   `yaml:"target"`
	Waypoints []string `yaml:"waypoints,omitempty"`
}

type ChartConfig struct {
	Title       string   `yaml:"title"`
	Primary     string   `yaml:"primary"`
	Comparison  []string `yaml:"comparison"`
	References  []string `yaml:"references"`
	FactorMax   int      `yaml:"factorMax"`
	FactorStep  int      `yaml:"factorStep"`
	TargetsFrom string   `yaml:"targetsFrom"`
	Targets     []string `yaml:"targets"`
}

type Config struct {
	DoublingPeriod growth.DoublingPeriod `yaml:"doublingPeriod"`
	OutputFile     string                `yaml:"outputFile"`
	Volumes        []Reference           `yaml:"volumes"`
	Scenarios      []Scenario            `yaml:"scenarios"`
	Chart          ChartConfig           `yaml:"chart"`
}

// Catalog is read-only once loaded. Accessors hand out copies.
type Catalog struct {
	cfg Config

	volumes   map[string]Reference
	scenarios map[string]int
}

func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalog)
}

func LoadCatalog(d []byte) (*Catalog, error) {
	var cfg Config

	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return NewCatalog(cfg)
}

func NewCatalog(cfg Config) (*Catalog, error) {
	c := &Catalog{
		cfg:       cloneConfig(cfg),
		volumes:   make(map[string]Reference, len(cfg.Volumes)),
		scenarios: make(map[string]int, len(cfg.Scenarios)),
	}

	if err := c.index(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) index() error {
	for _, v := range c.cfg.Volumes {
		if _, ok := c.volumes[v.Key]; ok {
			return fmt.Errorf("%w: duplicate volume %q", commerr.ErrInvalidArgument, v.Key)
		}

		c.volumes[v.Key] = v
	}

	for idx, s := range c.cfg.Scenarios {
		if _, ok := c.scenarios[s.Key]; ok {
			return fmt.Errorf("%w: duplicate scenario %q", commerr.ErrInvalidArgument, s.Key)
		}

		c.scenarios[s.Key] = idx
	}

	return nil
}

func (c *Catalog) Validate() error {
	if c.cfg.DoublingPeriod <= 0 {
		return fmt.Errorf("%w: doubling period must be positive, got %v", commerr.ErrInvalidArgument, c.cfg.DoublingPeriod)
	}

	if c.cfg.OutputFile == "" {
		return fmt.Errorf("%w: output file is required", commerr.ErrInvalidArgument)
	}

	for _, v := range c.cfg.Volumes {
		if v.Key == "" {
			return fmt.Errorf("%w: volume without key", commerr.ErrInvalidArgument)
		}
	}

	for _, s := range c.cfg.Scenarios {
		keys := append([]string{s.Initial, s.Target}, s.Waypoints...)
		if err := c.mustVolumes("scenario "+s.Key, keys); err != nil {
			return err
		}
	}

	ch := c.cfg.Chart

	if ch.Primary != "" {
		if err := c.mustScenarios("chart primary", []string{ch.Primary}); err != nil {
			return err
		}
	}

	if err := c.mustScenarios("chart comparison", ch.Comparison); err != nil {
		return err
	}

	if err := c.mustScenarios("chart references", ch.References); err != nil {
		return err
	}

	if len(ch.Targets) > 0 {
		if err := c.mustVolumes("chart targets", append([]string{ch.TargetsFrom}, ch.Targets...)); err != nil {
			return err
		}
	}

	return nil
}

func (c *Catalog) mustVolumes(where string, keys []string) error {
	for _, key := range keys {
		if _, ok := c.volumes[key]; !ok {
			return fmt.Errorf("%w: %s: unknown volume %q", commerr.ErrInvalidArgument, where, key)
		}
	}

	return nil
}

func (c *Catalog) mustScenarios(where string, keys []string) error {
	for _, key := range keys {
		if _, ok := c.scenarios[key]; !ok {
			return fmt.Errorf("%w: %s: unknown scenario %q", commerr.ErrInvalidArgument, where, key)
		}
	}

	return nil
}

func (c *Catalog) DoublingPeriod() growth.DoublingPeriod {
	return c.cfg.DoublingPeriod
}

func (c *Catalog) OutputFile() string {
	return c.cfg.OutputFile
}

func (c *Catalog) Volume(key string) (v Reference, ok bool) {
	v, ok = c.volumes[key]

	return
}

func (c *Catalog) Volumes() []Reference {
	return append([]Reference(nil), c.cfg.Volumes...)
}

func (c *Catalog) Scenario(key string) (s Scenario, ok bool) {
	idx, ok := c.scenarios[key]
	if !ok {
		return
	}

	s = cloneScenario(c.cfg.Scenarios[idx])

	return
}

func (c *Catalog) Scenarios() []Scenario {
	ss := make([]Scenario, 0, len(c.cfg.Scenarios))
	for _, s := range c.cfg.Scenarios {
		ss = append(ss, cloneScenario(s))
	}

	return ss
}

func (c *Catalog) Chart() ChartConfig {
	return cloneConfig(Config{Chart: c.cfg.Chart}).Chart
}

func cloneScenario(s Scenario) Scenario {
	s.Waypoints = append([]string(nil), s.Waypoints...)

	return s
}

func cloneConfig(cfg Config) Config {
	cfg.Volumes = append([]Reference(nil), cfg.Volumes...)

	scenarios := make([]Scenario, 0, len(cfg.Scenarios))
	for _, s := range cfg.Scenarios {
		scenarios = append(scenarios, cloneScenario(s))
	}

	cfg.Scenarios = scenarios

	cfg.Chart.Comparison = append([]string(nil), cfg.Chart.Comparison...)
	cfg.Chart.References = append([]string(nil), cfg.Chart.References...)
	cfg.Chart.Targets = append([]string(nil), cfg.Chart.Targets...)

	return cfg
}
