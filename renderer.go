package sarge

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/napalu/sarge/errs"
	"github.com/napalu/sarge/i18n"
	"github.com/napalu/sarge/internal/util"
)

const (
	// columns between the longest flag column and the descriptions
	descriptionGap = 3
	noShortIndent  = "    "
)

// Renderer writes the help text of a Parser
type Renderer struct {
	parser *Parser
	color  *bool
	width  int
}

// RendererOption configures a Renderer
type RendererOption func(r *Renderer)

// WithColor forces bold section labels on or off. By default they are bold only when
// writing to a terminal.
func WithColor(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.color = &enabled
	}
}

// WithWidth wraps descriptions at width columns. By default descriptions are wrapped at
// the terminal width when writing to a terminal and not wrapped otherwise.
func WithWidth(width int) RendererOption {
	return func(r *Renderer) {
		r.width = width
	}
}

// NewRenderer returns a Renderer for parser
func NewRenderer(parser *Parser, opts ...RendererOption) *Renderer {
	r := &Renderer{parser: parser}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render writes the description, the usage text and one line per flag in definition order:
//
//	-k, --kittens <val>   number of kittens
//	    --snake           flag without short form
func (r *Renderer) Render(w io.Writer) error {
	useColor, width := r.terminalSettings(w)
	heading := color.New(color.Bold)
	if useColor {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	var sb strings.Builder
	sb.WriteString(r.parser.Description() + "\n")
	sb.WriteString(heading.Sprint(r.label(errs.MsgUsageKey)) + "\n")
	sb.WriteString(r.parser.Usage() + "\n")
	sb.WriteString("\n")
	sb.WriteString(heading.Sprint(r.label(errs.MsgOptionsKey)) + "\n")

	flags := r.parser.Registry().Flags()
	pad := r.columnWidth(flags)
	indent := strings.Repeat(" ", len(noShortIndent)+len(longPrefix)+pad)
	for _, flag := range flags {
		sb.WriteString(r.shortColumn(flag))
		sb.WriteString(longPrefix + padRight(r.longColumn(flag), pad))

		lines := wrapText(flag.Description, width-len(indent))
		for i, line := range lines {
			if i > 0 {
				sb.WriteString(indent)
			}
			sb.WriteString(line + "\n")
		}
		if len(lines) == 0 {
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// FlagUsage returns the unpadded flag column of flag, such as "-k, --kittens <val>"
func (r *Renderer) FlagUsage(flag *Flag) string {
	return r.shortColumn(flag) + longPrefix + r.longColumn(flag)
}

func (r *Renderer) shortColumn(flag *Flag) string {
	if flag.Short == "" {
		return noShortIndent
	}

	return shortPrefix + flag.Short + ", "
}

func (r *Renderer) longColumn(flag *Flag) string {
	if flag.RequiresValue {
		return flag.Long + " " + r.label(errs.MsgValuePlaceholderKey)
	}

	return flag.Long
}

func (r *Renderer) columnWidth(flags []*Flag) int {
	maxLen := 1
	for _, flag := range flags {
		if l := utf8.RuneCountInString(r.longColumn(flag)); l > maxLen {
			maxLen = l
		}
	}

	return maxLen + descriptionGap
}

func (r *Renderer) label(key string) string {
	return i18n.Default().TL(r.parser.Language(), key)
}

func (r *Renderer) terminalSettings(w io.Writer) (bool, int) {
	termWidth, isTerm := util.TerminalWidth(w)

	useColor := isTerm
	if r.color != nil {
		useColor = *r.color
	}
	width := r.width
	if width == 0 && isTerm {
		width = termWidth
	}

	return useColor, width
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}

// wrapText splits text into lines of at most width runes at word boundaries.
// A width below 1 disables wrapping; words longer than width get a line of their own.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width < 1 {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}
