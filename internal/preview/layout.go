package preview

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/melissaiman/portfolio/internal/content"
)

// block is a run of lines. Blocks with an id are scroll-reveal targets.
type block struct {
	id    string
	lines []string
}

type layout struct {
	lines  []string
	ranges map[string][2]int
	order  []string
}

func bar(level, width int) string {
	filled := level * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func wrap(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	var out []string
	var line string
	for _, w := range strings.Fields(s) {
		if line != "" && runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
			out = append(out, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += w
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

func heading(s string) string {
	return "[ " + s + " ]"
}

// buildBlocks lays the portfolio out for a terminal of the given width.
func buildBlocks(site content.Portfolio, width int) []block {
	inner := width - 4
	p := site.Profile

	hero := []string{
		"",
		"  ✦ " + p.FirstName,
		"      " + p.LastName,
		"",
	}
	for _, l := range wrap(p.Headline, inner) {
		hero = append(hero, "  "+l)
	}
	hero = append(hero, "", "  ✦ "+p.Location+" · "+p.Email+" · "+p.WebsiteHost(), "")
	hero = append(hero, "  "+heading("SOBRE MÍ"))
	for _, l := range wrap(p.About, inner) {
		hero = append(hero, "  "+l)
	}
	var socials []string
	for _, s := range site.Socials {
		socials = append(socials, s.Label)
	}
	hero = append(hero, "", "  "+heading("REDES")+" "+strings.Join(socials, " · "), "")

	blocks := []block{{lines: hero}}

	edu := []string{"  " + heading("EDUCACIÓN")}
	for _, e := range site.Education {
		edu = append(edu, "  ✦ "+e.Institution, "    "+e.Degree, "    "+e.Period)
	}
	blocks = append(blocks, block{id: "education", lines: append(edu, "")})

	langs := []string{"  " + heading("IDIOMAS")}
	for _, l := range site.Languages {
		langs = append(langs, fmt.Sprintf("  %-14s %s %s", l.Name, bar(l.Level, 20), l.Label))
	}
	blocks = append(blocks, block{id: "languages", lines: append(langs, "")})

	exp := []string{"  " + heading("EXPERIENCIA")}
	for _, e := range site.Experience {
		exp = append(exp, "  ✦ "+e.Company, "    "+e.Role, "    "+e.Period+" · "+e.Type)
	}
	blocks = append(blocks, block{id: "experience", lines: append(exp, "")})

	skills := []string{"  " + heading("HABILIDADES")}
	for _, s := range site.Skills {
		skills = append(skills, fmt.Sprintf("  %-14s %s %d%%", s.Name, bar(s.Level, 20), s.Level))
	}
	blocks = append(blocks, block{id: "skills", lines: append(skills, "")})

	projects := []string{"  " + heading("PROYECTOS")}
	for _, pr := range site.Projects {
		projects = append(projects, "  ✦ "+pr.Name+" ("+pr.Tech+")")
		for _, l := range wrap(pr.Description, inner-4) {
			projects = append(projects, "    "+l)
		}
	}
	blocks = append(blocks, block{id: "projects", lines: append(projects, "")})

	certs := []string{"  " + heading("CERTIFICACIONES")}
	for _, c := range site.Certifications {
		line := "  ✦ " + c.Name + " · " + c.Issuer
		if c.Level != "" {
			line += " · " + c.Level
		}
		certs = append(certs, line)
	}
	blocks = append(blocks, block{id: "certifications", lines: append(certs, "")})
	return blocks
}

func newLayout(site content.Portfolio, width int) layout {
	l := layout{ranges: make(map[string][2]int)}
	for _, b := range buildBlocks(site, width) {
		start := len(l.lines)
		l.lines = append(l.lines, b.lines...)
		if b.id != "" {
			l.ranges[b.id] = [2]int{start, len(l.lines)}
			l.order = append(l.order, b.id)
		}
	}
	return l
}

// sectionAt returns the reveal target that owns line i.
func (l layout) sectionAt(i int) (string, bool) {
	for id, r := range l.ranges {
		if i >= r[0] && i < r[1] {
			return id, true
		}
	}
	return "", false
}
