package templates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
)

// ErrMalformedMarkup is returned for markup that does not parse as a single
// HTML fragment with a root element.
var ErrMalformedMarkup = errors.New("malformed template markup")

// Summary is what a terminal can show of a template: its root tag and the
// visible text runs in document order.
type Summary struct {
	Root string
	Text []string
}

// Lines renders the summary as display lines, root tag first.
func (s Summary) Lines() []string {
	lines := make([]string, 0, len(s.Text)+1)
	if s.Root != "" {
		lines = append(lines, "<"+s.Root+">")
	}
	return append(lines, s.Text...)
}

// Summarize parses markup with the HTML grammar.
func Summarize(markup string) (Summary, error) {
	return SummarizeCtx(context.Background(), markup)
}

// SummarizeCtx is Summarize with a cancellable parse.
func SummarizeCtx(ctx context.Context, markup string) (Summary, error) {
	src := []byte(strings.TrimSpace(markup))
	if len(src) == 0 {
		return Summary{}, fmt.Errorf("empty markup: %w", ErrMalformedMarkup)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(html.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return Summary{}, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return Summary{}, fmt.Errorf("syntax error in markup: %w", ErrMalformedMarkup)
	}

	var s Summary
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if isElement(child) {
			s.Root = tagName(child, src)
			break
		}
	}
	if s.Root == "" {
		return Summary{}, fmt.Errorf("no root element: %w", ErrMalformedMarkup)
	}
	collectText(root, src, &s.Text)
	return s, nil
}

func isElement(n *sitter.Node) bool {
	switch n.Type() {
	case "element", "script_element", "style_element":
		return true
	}
	return false
}

// tagName reads the tag_name of an element's start or self-closing tag.
func tagName(el *sitter.Node, src []byte) string {
	for i := 0; i < int(el.NamedChildCount()); i++ {
		tag := el.NamedChild(i)
		if tag.Type() != "start_tag" && tag.Type() != "self_closing_tag" {
			continue
		}
		for j := 0; j < int(tag.NamedChildCount()); j++ {
			if name := tag.NamedChild(j); name.Type() == "tag_name" {
				return strings.ToLower(name.Content(src))
			}
		}
	}
	return ""
}

func collectText(n *sitter.Node, src []byte, out *[]string) {
	if n.Type() == "text" {
		if t := strings.Join(strings.Fields(n.Content(src)), " "); t != "" {
			*out = append(*out, t)
		}
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		collectText(n.NamedChild(i), src, out)
	}
}
