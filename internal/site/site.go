// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package site holds the static copy of the foundry landing page. The copy
// lives in an embedded YAML document so the templates carry markup only.
package site

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"kogaine/internal/poster"
)

//go:embed copy.yaml
var defaultCopy []byte

// Link is a navigation or footer anchor.
type Link struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// Fact is a small label/value pair such as "Entry: Free".
type Fact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Brand struct {
	Name       string `yaml:"name"`
	Descriptor string `yaml:"descriptor"`
}

type Hero struct {
	Kicker      string `yaml:"kicker"`
	Title       string `yaml:"title"`
	Blurb       string `yaml:"blurb"`
	Established string `yaml:"established"`
	Location    string `yaml:"location"`
}

// Identity is the "Heinrich" brand card.
type Identity struct {
	Number   string   `yaml:"number"`
	Label    string   `yaml:"label"`
	Monogram string   `yaml:"monogram"`
	Category string   `yaml:"category"`
	Title    []string `yaml:"title"`
	Origin   []string `yaml:"origin"`
	Body     string   `yaml:"body"`
	Figure   string   `yaml:"figure"`
	Action   string   `yaml:"action"`
}

type Exhibition struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
	Venue  string `yaml:"venue"`
	Title  string `yaml:"title"`
	Suffix string `yaml:"suffix"`
	Facts  []Fact `yaml:"facts"`
}

type Ceramics struct {
	Number   string `yaml:"number"`
	Label    string `yaml:"label"`
	Backdrop string `yaml:"backdrop"`
	Title    string `yaml:"title"`
	Quote    string `yaml:"quote"`
}

type Split struct {
	Exhibition Exhibition `yaml:"exhibition"`
	Ceramics   Ceramics   `yaml:"ceramics"`
}

// GridCard is one tile of the two-up grid section.
type GridCard struct {
	Number string   `yaml:"number"`
	Label  string   `yaml:"label"`
	Title  []string `yaml:"title"`
	Kicker string   `yaml:"kicker"`
	Body   string   `yaml:"body"`
	Dark   bool     `yaml:"dark"`
}

// Studio is the copy around the poster generator form.
type Studio struct {
	Kicker          string             `yaml:"kicker"`
	Title           []string           `yaml:"title"`
	Intro           string             `yaml:"intro"`
	NameLabel       string             `yaml:"nameLabel"`
	NamePlaceholder string             `yaml:"namePlaceholder"`
	TypeLabel       string             `yaml:"typeLabel"`
	TypePlaceholder string             `yaml:"typePlaceholder"`
	StyleLabel      string             `yaml:"styleLabel"`
	DefaultStyle    poster.LayoutStyle `yaml:"defaultStyle"`
	Submit          string             `yaml:"submit"`
}

type Footer struct {
	Links  []Link `yaml:"links"`
	Notice string `yaml:"notice"`
}

// Copy is the complete landing page text.
type Copy struct {
	Brand    Brand      `yaml:"brand"`
	Nav      []Link     `yaml:"nav"`
	Hero     Hero       `yaml:"hero"`
	Identity Identity   `yaml:"identity"`
	Split    Split      `yaml:"split"`
	Grid     []GridCard `yaml:"grid"`
	Studio   Studio     `yaml:"studio"`
	Footer   Footer     `yaml:"footer"`

	version string
}

// ErrIncomplete is returned when a required section of the copy is empty.
var ErrIncomplete = errors.New("site: incomplete copy")

// Default returns the embedded landing page copy.
func Default() (*Copy, error) {
	return Parse(defaultCopy)
}

// Parse decodes a copy document. Unknown keys are rejected so typos in the
// YAML fail at startup instead of rendering blank sections.
func Parse(data []byte) (*Copy, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Copy
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("site: decode copy: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	c.version = hex.EncodeToString(sum[:6])
	return &c, nil
}

func (c *Copy) validate() error {
	switch {
	case c.Brand.Name == "":
		return fmt.Errorf("%w: brand.name", ErrIncomplete)
	case c.Hero.Title == "":
		return fmt.Errorf("%w: hero.title", ErrIncomplete)
	case len(c.Studio.Title) == 0:
		return fmt.Errorf("%w: studio.title", ErrIncomplete)
	case c.Studio.Submit == "":
		return fmt.Errorf("%w: studio.submit", ErrIncomplete)
	}
	if c.Studio.DefaultStyle == "" {
		c.Studio.DefaultStyle = poster.LayoutAutomotive
	}
	return nil
}

// Version is a short content hash of the source document, used to key
// cached renders of the page.
func (c *Copy) Version() string {
	return c.version
}
