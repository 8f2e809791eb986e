package tree

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero shrink", mutate: func(c *Config) { c.ShrinkFactor = 0 }},
		{name: "unit shrink", mutate: func(c *Config) { c.ShrinkFactor = 1 }},
		{name: "growing", mutate: func(c *Config) { c.ShrinkFactor = 1.2 }},
		{name: "NaN shrink", mutate: func(c *Config) { c.ShrinkFactor = math.NaN() }},
		{name: "negative variance", mutate: func(c *Config) { c.AngleVariance = -1 }},
		{name: "infinite split", mutate: func(c *Config) { c.SplitAngle = math.Inf(1) }},
		{name: "negative blur", mutate: func(c *Config) { c.Blur = -5 }},
		{name: "negative wiggle", mutate: func(c *Config) { c.WiggleScale = -0.01 }},
		{name: "inverted control", mutate: func(c *Config) { c.Control = Range{Min: 0.75, Max: 0.25} }},
		{name: "control past tip", mutate: func(c *Config) { c.Control.Max = 1.5 }},
		{name: "negative min length", mutate: func(c *Config) { c.MinLength = -1 }},
		{name: "negative min width", mutate: func(c *Config) { c.MinWidth = -1 }},
		{name: "unknown leaf", mutate: func(c *Config) { c.Leaf.Shape = "star" }},
		{name: "inverted leaf", mutate: func(c *Config) { c.Leaf.RadiusX = Range{Min: 6, Max: 3} }},
		{name: "negative leaf", mutate: func(c *Config) { c.Leaf.RadiusY = Range{Min: -1, Max: 3} }},
		{name: "opaque overflow", mutate: func(c *Config) { c.Leaf.Alpha = 1.5 }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(&c)

			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAllowsVariants(t *testing.T) {
	c := DefaultConfig()
	c.ShrinkFactor = 0.75
	c.SplitAngle = 20
	c.AngleVariance = 0
	c.Blur = 0
	c.Leaf.Shape = LeafRound
	c.MinLength = 10
	c.MinWidth = 2

	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
}
