// Package content holds the portfolio's compile-time data.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed content.toml
var raw string

type Profile struct {
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
	Headline  string `toml:"headline"`
	Location  string `toml:"location"`
	Email     string `toml:"email"`
	Website   string `toml:"website"`
	Photo     string `toml:"photo"`
	About     string `toml:"about"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// WebsiteHost is the website without its scheme.
func (p Profile) WebsiteHost() string {
	s := strings.TrimPrefix(p.Website, "https://")
	return strings.TrimPrefix(s, "http://")
}

type Meta struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	OGType      string `toml:"og_type"`
}

type Social struct {
	Name  string `toml:"name"`
	URL   string `toml:"url"`
	Label string `toml:"label"`
}

type Education struct {
	Institution string `toml:"institution"`
	Degree      string `toml:"degree"`
	Period      string `toml:"period"`
}

type Experience struct {
	Company string `toml:"company"`
	Role    string `toml:"role"`
	Period  string `toml:"period"`
	Type    string `toml:"type"`
}

type Project struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Tech        string `toml:"tech"`
}

// Skill level is a percentage.
type Skill struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"`
}

type Language struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"`
	Label string `toml:"label"`
}

type Certification struct {
	Name   string `toml:"name"`
	Issuer string `toml:"issuer"`
	Level  string `toml:"level"`
}

// Portfolio is everything rendered on the page.
type Portfolio struct {
	Lang           string          `toml:"lang"`
	Profile        Profile         `toml:"profile"`
	Meta           Meta            `toml:"meta"`
	Socials        []Social        `toml:"socials"`
	Education      []Education     `toml:"education"`
	Experience     []Experience    `toml:"experience"`
	Projects       []Project       `toml:"projects"`
	Skills         []Skill         `toml:"skills"`
	Languages      []Language      `toml:"languages"`
	Certifications []Certification `toml:"certifications"`
}

// Load decodes the embedded portfolio.
func Load() (Portfolio, error) {
	return Parse(raw)
}

// Parse decodes a portfolio document and checks it for obvious mistakes.
func Parse(doc string) (Portfolio, error) {
	var p Portfolio
	md, err := toml.Decode(doc, &p)
	if err != nil {
		return Portfolio{}, fmt.Errorf("failed to decode content: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Portfolio{}, fmt.Errorf("unknown content key %q", undecoded[0].String())
	}
	if err := p.validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

func (p Portfolio) validate() error {
	if p.Profile.FirstName == "" {
		return fmt.Errorf("profile.first_name is required")
	}
	for _, s := range p.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("skill %q level %d out of range 0-100", s.Name, s.Level)
		}
	}
	for _, l := range p.Languages {
		if l.Level < 0 || l.Level > 100 {
			return fmt.Errorf("language %q level %d out of range 0-100", l.Name, l.Level)
		}
	}
	return nil
}
