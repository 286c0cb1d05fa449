package scenario

import (
	"errors"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	assert.Nil(t, err)

	assert.EqualValues(t, 300, c.DoublingPeriod())
	assert.Equal(t, "exponential_growth_dorayaki.png", c.OutputFile())
	assert.Len(t, c.Volumes(), 8)
	assert.Len(t, c.Scenarios(), 3)

	v, ok := c.Volume("dorayaki")
	assert.True(t, ok)
	assert.EqualValues(t, 0.00015, v.Volume)

	v, ok = c.Volume("solar-system")
	assert.True(t, ok)
	assert.EqualValues(t, 3.69e38, v.Volume)
	assert.Equal(t, "Solar System", v.Name)

	_, ok = c.Volume("moon")
	assert.False(t, ok)

	s, ok := c.Scenario("solar-system")
	assert.True(t, ok)
	assert.Equal(t, "dorayaki", s.Initial)
	assert.Equal(t, []string{"marble", "soccer-ball", "tokyo-dome", "earth", "sun"}, s.Waypoints)

	ch := c.Chart()
	assert.Equal(t, "solar-system", ch.Primary)
	assert.Equal(t, 100, ch.FactorMax)
	assert.Equal(t, 10, ch.FactorStep)
	assert.Len(t, ch.Targets, 6)
}

func TestCatalogCopies(t *testing.T) {
	c, err := DefaultCatalog()
	assert.Nil(t, err)

	s, _ := c.Scenario("solar-system")
	s.Waypoints[0] = "changed"

	vs := c.Volumes()
	vs[0].Volume = -1

	ch := c.Chart()
	ch.Targets[0] = "changed"

	s2, _ := c.Scenario("solar-system")
	assert.Equal(t, "marble", s2.Waypoints[0])
	assert.EqualValues(t, 0.00015, c.Volumes()[0].Volume)
	assert.Equal(t, "marble", c.Chart().Targets[0])
}

func TestLoadCatalogErrors(t *testing.T) {
	cases := map[string]string{
		"bad period": `
doublingPeriod: 0
outputFile: a.png
`,
		"no output": `
doublingPeriod: 300
`,
		"duplicate volume": `
doublingPeriod: 300
outputFile: a.png
volumes:
  - {key: a, volume: 1}
  - {key: a, volume: 2}
`,
		"unknown scenario volume": `
doublingPeriod: 300
outputFile: a.png
volumes:
  - {key: a, volume: 1}
scenarios:
  - {key: s, initial: a, target: b}
`,
		"unknown chart scenario": `
doublingPeriod: 300
outputFile: a.png
chart:
  primary: nope
`,
	}

	for name, doc := range cases {
		_, err := LoadCatalog([]byte(doc))
		assert.NotNil(t, err, name)
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), name)
	}

	_, err := LoadCatalog([]byte("doublingPeriod: ["))
	assert.NotNil(t, err)
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(Config{
		DoublingPeriod: 60,
		OutputFile:     "out.png",
		Volumes: []Reference{
			{Key: "cell", Name: "Cell", Volume: 1e-15},
			{Key: "cup", Name: "Cup", Volume: 2.5e-4},
		},
		Scenarios: []Scenario{
			{Key: "cup", Title: "CELL TO CUP", Initial: "cell", Target: "cup"},
		},
	})
	assert.Nil(t, err)

	s, ok := c.Scenario("cup")
	assert.True(t, ok)
	assert.Equal(t, "CELL TO CUP", s.Title)
}
