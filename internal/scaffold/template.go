package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// Template parse and render errors that indicate a broken template set or a
// plan/template contract violation. These never surface to users; hitting
// one is a bug in the shipped templates.
var (
	// ErrUnknownAssign indicates a template references an assign key that
	// does not exist.
	ErrUnknownAssign = errors.New("unknown assign key")

	// ErrAssignType indicates a template used a string assign as a condition
	// or a boolean assign in an interpolation.
	ErrAssignType = errors.New("assign type mismatch")
)

const (
	tagOpen  = "<%"
	tagClose = "%>"
)

// node is one typed element of a parsed template body.
type node interface {
	render(b *strings.Builder, a *Assigns) error
}

// literal is a verbatim text span.
type literal string

func (l literal) render(b *strings.Builder, _ *Assigns) error {
	b.WriteString(string(l))
	return nil
}

// interp substitutes a string-valued assign.
type interp struct {
	key string
}

func (n interp) render(b *strings.Builder, a *Assigns) error {
	v, ok := a.value(n.key)
	if !ok {
		return fmt.Errorf("%w: @%s", ErrUnknownAssign, n.key)
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: @%s is not a string", ErrAssignType, n.key)
	}
	b.WriteString(s)
	return nil
}

// conditional includes one of two branches based on a boolean assign.
type conditional struct {
	key  string
	then []node
	els  []node
}

func (n conditional) render(b *strings.Builder, a *Assigns) error {
	v, ok := a.value(n.key)
	if !ok {
		return fmt.Errorf("%w: @%s", ErrUnknownAssign, n.key)
	}
	cond, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: @%s is not a boolean", ErrAssignType, n.key)
	}

	branch := n.then
	if !cond {
		branch = n.els
	}
	for _, child := range branch {
		if err := child.render(b, a); err != nil {
			return err
		}
	}
	return nil
}

// Template is a named, immutable, parsed template body. Parsing happens once
// at startup; rendering walks the node list against an assigns record.
type Template struct {
	name  string
	nodes []node
}

// Name returns the template's name.
func (t *Template) Name() string {
	return t.name
}

// Render evaluates the template against the assigns. Rendering is a single
// pass and referentially transparent: identical inputs yield identical
// output.
func (t *Template) Render(a *Assigns) (string, error) {
	var b strings.Builder
	for _, n := range t.nodes {
		if err := n.render(&b, a); err != nil {
			return "", fmt.Errorf("template %s: %w", t.name, err)
		}
	}
	return b.String(), nil
}

// ParseTemplate parses an EEx-style template body into its node form.
//
// Recognized tags:
//
//	<%= @key %>           interpolation
//	<%= if @key do %>     conditional region start
//	<% else %>            optional else branch
//	<% end %>             conditional region end
//
// Conditionals nest to arbitrary depth. Block tags (if/else/end) swallow one
// immediately following newline so excluded regions leave no blank lines.
func ParseTemplate(name, source string) (*Template, error) {
	p := &templateParser{name: name, src: source}
	nodes, err := p.parseNodes(nil)
	if err != nil {
		return nil, err
	}
	if len(p.blockStack) != 0 {
		return nil, fmt.Errorf("template %s: unclosed <%%= if %%> block", name)
	}
	return &Template{name: name, nodes: nodes}, nil
}

// mustParse parses a template and panics on error. Used only for the static
// embedded template set, where a parse failure is a build defect.
func mustParse(name, source string) *Template {
	t, err := ParseTemplate(name, source)
	if err != nil {
		panic(err)
	}
	return t
}

type templateParser struct {
	name       string
	src        string
	pos        int
	blockStack []string
}

// token kinds produced by nextTag.
const (
	tokInterp = iota
	tokIf
	tokElse
	tokEnd
)

// parseNodes consumes nodes until an else/end tag belonging to the enclosing
// block, or end of input. terminators receives the terminating token kind.
func (p *templateParser) parseNodes(terminator *int) ([]node, error) {
	var nodes []node

	for p.pos < len(p.src) {
		open := strings.Index(p.src[p.pos:], tagOpen)
		if open < 0 {
			nodes = append(nodes, literal(p.src[p.pos:]))
			p.pos = len(p.src)
			break
		}

		if open > 0 {
			nodes = append(nodes, literal(p.src[p.pos:p.pos+open]))
			p.pos += open
		}

		kind, key, err := p.nextTag()
		if err != nil {
			return nil, err
		}

		switch kind {
		case tokInterp:
			nodes = append(nodes, interp{key: key})

		case tokIf:
			p.swallowNewline()
			p.blockStack = append(p.blockStack, key)

			var term int
			thenNodes, err := p.parseNodes(&term)
			if err != nil {
				return nil, err
			}

			var elseNodes []node
			if term == tokElse {
				elseNodes, err = p.parseNodes(&term)
				if err != nil {
					return nil, err
				}
				if term != tokEnd {
					return nil, fmt.Errorf("template %s: <%% else %%> without <%% end %%>", p.name)
				}
			}

			p.blockStack = p.blockStack[:len(p.blockStack)-1]
			nodes = append(nodes, conditional{key: key, then: thenNodes, els: elseNodes})

		case tokElse, tokEnd:
			if terminator == nil || len(p.blockStack) == 0 {
				return nil, fmt.Errorf("template %s: unexpected <%% %s %%>", p.name, tagWord(kind))
			}
			p.swallowNewline()
			*terminator = kind
			return nodes, nil
		}
	}

	if terminator != nil {
		return nil, fmt.Errorf("template %s: unclosed <%%= if %%> block", p.name)
	}
	return nodes, nil
}

// nextTag reads the tag starting at p.pos (which points at "<%") and
// classifies it.
func (p *templateParser) nextTag() (int, string, error) {
	end := strings.Index(p.src[p.pos:], tagClose)
	if end < 0 {
		return 0, "", fmt.Errorf("template %s: unterminated tag", p.name)
	}

	body := p.src[p.pos+len(tagOpen) : p.pos+end]
	p.pos += end + len(tagClose)

	trimmed := strings.TrimSpace(body)
	switch {
	case trimmed == "else":
		return tokElse, "", nil

	case trimmed == "end":
		return tokEnd, "", nil

	case strings.HasPrefix(trimmed, "="):
		expr := strings.TrimSpace(trimmed[1:])
		if after, ok := strings.CutPrefix(expr, "if @"); ok {
			// The do keyword must stand apart from the assign key.
			fields := strings.Fields(after)
			if len(fields) != 2 || fields[1] != "do" {
				return 0, "", fmt.Errorf("template %s: malformed if tag %q", p.name, body)
			}
			return tokIf, fields[0], nil
		}
		if after, ok := strings.CutPrefix(expr, "@"); ok {
			return tokInterp, strings.TrimSpace(after), nil
		}
		return 0, "", fmt.Errorf("template %s: unsupported expression %q", p.name, body)

	default:
		return 0, "", fmt.Errorf("template %s: unsupported tag %q", p.name, body)
	}
}

// swallowNewline consumes a single newline directly after a block tag.
func (p *templateParser) swallowNewline() {
	if p.pos < len(p.src) && p.src[p.pos] == '\n' {
		p.pos++
	}
}

func tagWord(kind int) string {
	if kind == tokElse {
		return "else"
	}
	return "end"
}
