package viz

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/sumtree"
	"golang.org/x/term"
)

// Palette maps the two node classes to console colors. It may cover just one
// class; uncovered cells are printed unstyled.
type Palette struct {
	Inner *color.Color
	Leaf  *color.Color
}

func defaultPalette() *Palette {
	return &Palette{
		Inner: color.New(color.FgCyan),
		Leaf:  color.New(color.FgGreen, color.Bold),
	}
}

// Config collects rendering options for console output.
type Config struct {
	Palette   *Palette
	LineWidth int // maximum line width in character cells; 0 means unbounded
}

// ConfigFromTerminal creates a config from the current terminal's properties
// (if stdout is interactive). Non-interactive output gets a width of 80.
func ConfigFromTerminal() *Config {
	config := &Config{
		Palette:   defaultPalette(),
		LineWidth: 80,
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			config.LineWidth = w
		}
	}
	return config
}

// Print outputs the level structure of a tree to stdout.
//
// If config is nil, a heuristic will create one from the current terminal's
// properties.
func Print[T sumtree.Value](tree *sumtree.Tree[T], config *Config) error {
	return Output(tree, os.Stdout, config)
}

// Output renders one line per tree level to w, cells separated by " | ".
// Lines exceeding the configured width are cut off with an ellipsis.
func Output[T sumtree.Value](tree *sumtree.Tree[T], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	palette := config.Palette
	if palette == nil {
		palette = defaultPalette()
	}
	tracer().Debugf("console output of %v", tree)
	type cell struct {
		text string
		leaf bool
	}
	var levels [][]cell
	for node := range tree.Walk() {
		for node.Level() >= len(levels) {
			levels = append(levels, nil)
		}
		levels[node.Level()] = append(levels[node.Level()], cell{
			text: formatNode(node),
			leaf: node.IsLeaf(),
		})
	}
	for _, level := range levels {
		width := 0
		for i, c := range level {
			sep := " | "
			if i == 0 {
				sep = ""
			}
			width += utf8.RuneCountInString(sep) + utf8.RuneCountInString(c.text)
			if config.LineWidth > 0 && width > config.LineWidth {
				if _, err := io.WriteString(w, "…"); err != nil {
					return err
				}
				break
			}
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
			if err := printCell(w, palette, c.text, c.leaf); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatNode[T sumtree.Value](node sumtree.Node[T]) string {
	if node.IsLeaf() {
		return fmt.Sprintf("%v @%d", node.Sum, node.From)
	}
	return fmt.Sprintf("Σ[%d,%d]=%v", node.From, node.To, node.Sum)
}

func printCell(w io.Writer, palette *Palette, text string, leaf bool) error {
	c := palette.Inner
	if leaf {
		c = palette.Leaf
	}
	if c == nil {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := c.Fprint(w, text)
	return err
}
