package hierarchy

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/albertoruibal/kotlin/internal/types"
)

// parseTypeExpr parses a type expression:
//
//	type       := name [ '<' projection {',' projection} '>' ] [ '?' ]
//	projection := '*' | [ 'in' | 'out' ] type
//
// Names resolve against classes first, then against the scope of type
// parameters (used for supertype expressions inside a class declaration).
func parseTypeExpr(src string, classes map[string]*types.TypeConstructor, scope map[string]types.Type) (types.Type, error) {
	p := &typeParser{src: src, classes: classes, scope: scope}
	t, err := p.parseType()
	if err != nil {
		return types.Type{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return types.Type{}, fmt.Errorf("unexpected %q at offset %d in %q", p.src[p.pos:], p.pos, src)
	}
	return t, nil
}

type typeParser struct {
	src     string
	pos     int
	classes map[string]*types.TypeConstructor
	scope   map[string]types.Type
}

func (p *typeParser) parseType() (types.Type, error) {
	p.skipSpace()
	name := p.readName()
	if name == "" {
		return types.Type{}, fmt.Errorf("expected a type name at offset %d in %q", p.pos, p.src)
	}

	var t types.Type
	if paramType, ok := p.scope[name]; ok {
		t = paramType
	} else if ctor, ok := p.classes[name]; ok {
		t = types.Simple(ctor)
	} else {
		return types.Type{}, fmt.Errorf("unknown type %q in %q", name, p.src)
	}

	if p.peek() == '<' {
		p.pos++
		var args []types.TypeProjection
		for {
			arg, err := p.parseProjection()
			if err != nil {
				return types.Type{}, err
			}
			args = append(args, arg)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			break
		}
		if p.peek() != '>' {
			return types.Type{}, fmt.Errorf("expected '>' at offset %d in %q", p.pos, p.src)
		}
		p.pos++
		if want := len(t.Constructor.Parameters); want != len(args) {
			return types.Type{}, fmt.Errorf("%s expects %d type argument(s), got %d in %q",
				t.Constructor.Name, want, len(args), p.src)
		}
		t = types.Simple(t.Constructor, args...)
	} else if want := len(t.Constructor.Parameters); want != 0 && !t.Constructor.IsTypeParameter() {
		return types.Type{}, fmt.Errorf("%s expects %d type argument(s) in %q", t.Constructor.Name, want, p.src)
	}

	if p.peek() == '?' {
		p.pos++
		t = t.MarkedNullable()
	}
	return t, nil
}

func (p *typeParser) parseProjection() (types.TypeProjection, error) {
	p.skipSpace()
	if p.peek() == '*' {
		p.pos++
		return types.Star, nil
	}
	variance := types.Invariant
	mark := p.pos
	switch word := p.readName(); word {
	case "in":
		variance = types.In
	case "out":
		variance = types.Out
	default:
		p.pos = mark
	}
	if variance != types.Invariant {
		// "in"/"out" must be followed by a type, otherwise they were a name
		p.skipSpace()
		if !isNameStart(p.peek()) {
			p.pos = mark
			variance = types.Invariant
		}
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if variance == types.Invariant {
		return types.InvariantOf(t), nil
	}
	return types.Projection{Variance: variance, Type: t}, nil
}

func (p *typeParser) readName() string {
	start := p.pos
	for p.pos < len(p.src) && isNameChar(rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) skipSpace() {
	p.pos += len(p.src[p.pos:]) - len(strings.TrimLeft(p.src[p.pos:], " \t"))
}

func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func isNameStart(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b))
}

func isNameChar(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
