package ptb

import (
	"fmt"
	"strings"
)

type TypeTagKind uint8

// Ordered as the BCS variant index
const (
	TypeBool TypeTagKind = iota
	TypeU8
	TypeU64
	TypeU128
	TypeAddress
	TypeSigner
	TypeVector
	TypeStruct
	TypeU16
	TypeU32
	TypeU256
)

var primitiveTypes = map[string]TypeTagKind{
	"bool":    TypeBool,
	"u8":      TypeU8,
	"u16":     TypeU16,
	"u32":     TypeU32,
	"u64":     TypeU64,
	"u128":    TypeU128,
	"u256":    TypeU256,
	"address": TypeAddress,
	"signer":  TypeSigner,
}

// TypeTag is a parsed Move type, e.g. 0x2::coin::Coin<0x2::sui::SUI>
type TypeTag struct {
	Kind   TypeTagKind
	Vector *TypeTag
	Struct *StructTag
}

type StructTag struct {
	Address    Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

// String renders the canonical form, where addresses are 64 hex digits.
func (tag TypeTag) String() string {
	switch tag.Kind {
	case TypeVector:
		return fmt.Sprintf("vector<%s>", tag.Vector.String())
	case TypeStruct:
		return tag.Struct.String()
	}
	for name, kind := range primitiveTypes {
		if kind == tag.Kind {
			return name
		}
	}
	return fmt.Sprintf("unknown(%d)", tag.Kind)
}

func (tag *StructTag) String() string {
	var sb strings.Builder
	sb.WriteString(tag.Address.String())
	sb.WriteString("::")
	sb.WriteString(tag.Module)
	sb.WriteString("::")
	sb.WriteString(tag.Name)
	if len(tag.TypeParams) > 0 {
		sb.WriteString("<")
		for i, param := range tag.TypeParams {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(param.String())
		}
		sb.WriteString(">")
	}
	return sb.String()
}

type typeParser struct {
	input string
	pos   int
}

func ParseTypeTag(input string) (TypeTag, error) {
	p := &typeParser{input: input}
	tag, err := p.parseType()
	if err != nil {
		return TypeTag{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return TypeTag{}, fmt.Errorf("invalid type %q: unexpected %q at %d", input, p.input[p.pos:], p.pos)
	}
	return tag, nil
}

// NormalizeType returns the canonical form of a Move type identifier.  Pool ordering compares
// identifiers in this form.
func NormalizeType(input string) (string, error) {
	tag, err := ParseTypeTag(input)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeParser) consume(token string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], token) {
		p.pos += len(token)
		return true
	}
	return false
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid type %q: %s", p.input, fmt.Sprintf(format, args...))
}

func (p *typeParser) parseType() (TypeTag, error) {
	name := p.ident()
	if name == "" {
		return TypeTag{}, p.errorf("expected identifier at %d", p.pos)
	}
	if name == "vector" {
		if !p.consume("<") {
			return TypeTag{}, p.errorf("expected '<' after vector")
		}
		inner, err := p.parseType()
		if err != nil {
			return TypeTag{}, err
		}
		if !p.consume(">") {
			return TypeTag{}, p.errorf("expected '>' to close vector")
		}
		return TypeTag{Kind: TypeVector, Vector: &inner}, nil
	}
	if kind, ok := primitiveTypes[name]; ok {
		return TypeTag{Kind: kind}, nil
	}

	addr, err := ParseAddress(name)
	if err != nil {
		return TypeTag{}, p.errorf("bad address %q", name)
	}
	if !p.consume("::") {
		return TypeTag{}, p.errorf("expected '::' after address")
	}
	module := p.ident()
	if module == "" || !p.consume("::") {
		return TypeTag{}, p.errorf("expected module name")
	}
	structName := p.ident()
	if structName == "" {
		return TypeTag{}, p.errorf("expected struct name")
	}
	tag := &StructTag{Address: addr, Module: module, Name: structName}
	if p.consume("<") {
		for {
			param, err := p.parseType()
			if err != nil {
				return TypeTag{}, err
			}
			tag.TypeParams = append(tag.TypeParams, param)
			if p.consume(",") {
				continue
			}
			if p.consume(">") {
				break
			}
			return TypeTag{}, p.errorf("expected ',' or '>' in type parameters")
		}
	}
	return TypeTag{Kind: TypeStruct, Struct: tag}, nil
}
