package prd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lineKind classifies a document line for cosmetic styling only. No
// semantic validation happens here; malformed input degrades to plain
// text.
type lineKind int

const (
	kindPlain lineKind = iota
	kindHeading
	kindSubHeading
	kindBullet
	kindNumbered
	kindBold
	kindTable
	kindRule
	kindLink
)

// Formatter renders extracted document blocks line by line with
// distinct styles per line kind.
type Formatter struct {
	heading    lipgloss.Style
	subHeading lipgloss.Style
	bullet     lipgloss.Style
	numbered   lipgloss.Style
	bold       lipgloss.Style
	table      lipgloss.Style
	rule       lipgloss.Style
	link       lipgloss.Style
	code       lipgloss.Style
	codeLabel  lipgloss.Style
	plain      lipgloss.Style
}

// NewFormatter creates a Formatter with the default palette.
func NewFormatter() *Formatter {
	return &Formatter{
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		subHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		bullet:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		numbered:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		bold:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		table:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		link:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		code:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		codeLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		plain:      lipgloss.NewStyle(),
	}
}

// codeBlockLabel maps a fence language tag to a cosmetic section label.
func codeBlockLabel(fence string) string {
	switch {
	case strings.Contains(fence, "bash"), strings.Contains(fence, "shell"), strings.Contains(fence, "sh"):
		return "Shell Command:"
	case strings.Contains(fence, "hcl"), strings.Contains(fence, "terraform"):
		return "Terraform Configuration:"
	case strings.Contains(fence, "yaml"), strings.Contains(fence, "yml"):
		return "YAML Configuration:"
	case strings.Contains(fence, "json"):
		return "JSON:"
	default:
		return ""
	}
}

// classify determines the styling kind of a non-code line.
func classify(line string) lineKind {
	stripped := strings.TrimSpace(line)
	switch {
	case stripped == "":
		return kindPlain
	case strings.HasPrefix(stripped, "##"):
		return kindSubHeading
	case strings.HasPrefix(stripped, "#"):
		return kindHeading
	case strings.HasPrefix(stripped, "**") && strings.HasSuffix(stripped, "**") && len(stripped) > 4:
		return kindBold
	case strings.HasPrefix(stripped, "*") && !strings.HasPrefix(stripped, "**"),
		strings.HasPrefix(stripped, "-") && !strings.HasPrefix(stripped, "--"):
		return kindBullet
	case isNumbered(stripped):
		return kindNumbered
	case strings.HasPrefix(stripped, "|"):
		return kindTable
	case strings.HasPrefix(stripped, "─") || strings.HasPrefix(stripped, "═"):
		return kindRule
	case strings.Contains(line, "[") && strings.Contains(line, "]("):
		return kindLink
	default:
		return kindPlain
	}
}

// isNumbered reports whether the line starts a numbered list entry.
func isNumbered(s string) bool {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && s[i] == '.'
}

// Format styles a document block line by line. Fenced code blocks are
// delimited with rules and labeled by declared language; unbalanced
// fences simply style the remainder as code.
func (f *Formatter) Format(content string) []string {
	var out []string
	inCode := false

	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "```") {
			inCode = !inCode
			out = append(out, f.rule.Render(strings.Repeat("─", 60)))
			if inCode {
				if label := codeBlockLabel(strings.ToLower(line)); label != "" {
					out = append(out, f.codeLabel.Render(label))
				}
			}
			continue
		}

		if inCode {
			out = append(out, f.code.Render(line))
			continue
		}

		switch classify(line) {
		case kindSubHeading:
			out = append(out, f.subHeading.Render(line))
		case kindHeading:
			out = append(out, f.heading.Render(line))
		case kindBold:
			out = append(out, f.bold.Render(strings.Trim(strings.TrimSpace(line), "*")))
		case kindBullet:
			body := strings.TrimLeft(strings.TrimSpace(line), "*- ")
			out = append(out, f.bullet.Render("• ")+body)
		case kindNumbered:
			out = append(out, f.numbered.Render(line))
		case kindTable:
			out = append(out, f.table.Render(line))
		case kindRule:
			out = append(out, f.rule.Render(line))
		case kindLink:
			out = append(out, f.link.Render(line))
		case kindPlain:
			out = append(out, f.plain.Render(line))
		}
	}

	return out
}
