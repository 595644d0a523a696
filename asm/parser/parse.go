package parser

import (
	"fmt"
	"strings"

	"github.com/azurelit/groundvm/op"
)

// Parser turns scene source into a flat node list: directives, labels
// and instructions, in source order.
type Parser struct {
	lexer     *lexer
	currToken item
	peekToken item

	Nodes []Node
}

// NewParser creates a new parser for the named input.
func NewParser(name, input string) *Parser {
	p := &Parser{
		lexer: NewLexer(name, input),
	}
	// Preload the next token.
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.currToken = p.peekToken
	p.peekToken = p.lexer.nextItem()
}

func (p *Parser) parseDirective() error {
	d := &Directive{Name: strings.TrimPrefix(p.currToken.val, string(directiveChar))}
	for !p.peekToken.typ.isEOL() {
		p.nextToken()
		switch p.currToken.typ {
		case itemIdentifier, itemNumber:
			d.Args = append(d.Args, p.currToken.val)
		case itemRawString:
			d.Args = append(d.Args, unquote(p.currToken.val))
		default:
			return fmt.Errorf("unexpected %s in directive %c%s", p.currToken, directiveChar, d.Name)
		}
	}
	p.Nodes = append(p.Nodes, d)
	return nil
}

func unquote(in string) string {
	in = strings.TrimPrefix(in, "\"")
	in = strings.TrimSuffix(in, "\"")
	in = strings.ReplaceAll(in, "\\\"", "\"")
	in = strings.ReplaceAll(in, "\\n", "\n")
	return in
}

func (p *Parser) parseLabel() error {
	for _, n := range p.Nodes {
		if l, ok := n.(*Label); ok && l.Name == p.currToken.val {
			return fmt.Errorf("duplicate label %q", p.currToken.val)
		}
	}
	p.Nodes = append(p.Nodes, &Label{Name: p.currToken.val})
	return nil
}

func (p *Parser) parseInstruction() error {
	oc, ok := op.OpCodeByName(p.currToken.val)
	if !ok {
		return fmt.Errorf("unknown instruction %q", p.currToken.val)
	}
	ins := &Instruction{OpCode: oc}

	expectParam := !p.peekToken.typ.isEOL()
	for expectParam {
		p.nextToken()
		param := &Parameter{Raw: p.currToken.val}
		switch p.currToken.typ {
		case itemNumber:
			param.Kind = ParamNumber
		case itemLabelRef:
			param.Kind = ParamLabel
		case itemVarRef:
			param.Kind = ParamVar
		case itemStringRef:
			param.Kind = ParamString
		case itemIdentifier:
			param.Kind = ParamIdent
		default:
			return fmt.Errorf("unexpected %s in %s parameters", p.currToken, oc.Name)
		}
		ins.Params = append(ins.Params, param)

		if p.peekToken.typ.isEOL() {
			break
		}
		p.nextToken()
		if p.currToken.typ != itemComa {
			return fmt.Errorf("expected comma after parameter, got %s", p.currToken)
		}
		if p.peekToken.typ.isEOL() {
			return fmt.Errorf("unexpected comma at the end of instruction %s", ins)
		}
	}

	if err := ins.ValidateParameters(); err != nil {
		return fmt.Errorf("invalid instruction %s: %w", ins, err)
	}
	p.Nodes = append(p.Nodes, ins)
	return nil
}

// Parse consumes the whole input.
func (p *Parser) Parse() error {
	for {
		p.nextToken()
		item := p.currToken
		if item.typ == itemEOF {
			break
		}
		if item.typ == itemError {
			return fmt.Errorf("%s:%d: %s", p.lexer.name, item.line, item.val)
		}

		var err error
		switch item.typ {
		case itemNewline, itemComment:
			continue
		case itemDirective:
			err = p.parseDirective()
		case itemLabel:
			err = p.parseLabel()
		case itemIdentifier:
			err = p.parseInstruction()
		default:
			err = fmt.Errorf("unexpected item %s", item)
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", p.lexer.name, item.line, err)
		}
	}
	return nil
}
