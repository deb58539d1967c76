package sidim

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseScalar parses a numeric expression with optional embedded unit
// symbols, arithmetic operators, grouping, function calls, and roots
// into a Scalar, per the grammar:
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/" | juxtaposition) unary }
//	unary   := "-" unary | power
//	power   := postfix [ "^" unary ]
//	postfix := primary [ "!" ]
//	primary := number [unit] | "(" expr ")" | identifier "(" args ")" | identifier
//
// A number directly followed by letters (with no operator between them,
// e.g. "9.8 m/s^2" or "5kg") has those letters parsed as a unit
// expression and attached to the number; a bare identifier not
// followed by "(" is looked up first as a named constant, then as a
// unit applied to the value 1.
func ParseScalar(expression string) (*Scalar, error) {
	p := &exprParser{runes: []rune(expression)}
	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.atEnd() {
		return nil, newError(KindParseError, "unexpected trailing input %q in expression %q", string(p.runes[p.pos:]), expression)
	}
	return result, nil
}

type exprParser struct {
	runes []rune
	pos   int
}

func (p *exprParser) atEnd() bool { return p.pos >= len(p.runes) }

func (p *exprParser) peek() rune {
	if p.atEnd() {
		return 0
	}
	return p.runes[p.pos]
}

func (p *exprParser) peekAt(offset int) rune {
	i := p.pos + offset
	if i < 0 || i >= len(p.runes) {
		return 0
	}
	return p.runes[i]
}

func (p *exprParser) skipSpace() {
	for !p.atEnd() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

func (p *exprParser) parseExpr() (*Scalar, error) {
	p.skipSpace()
	result, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			next, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			result, err = AddScalars(result, next)
			if err != nil {
				return nil, err
			}
		case '-':
			p.pos++
			next, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			result, err = SubtractScalars(result, next)
			if err != nil {
				return nil, err
			}
		default:
			return result, nil
		}
	}
}

func (p *exprParser) parseTerm() (*Scalar, error) {
	result, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch {
		case p.peek() == '*':
			p.pos++
			next, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			result, err = MultiplyScalars(result, next)
			if err != nil {
				return nil, err
			}
		case p.peek() == '/':
			p.pos++
			next, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			result, err = DivideScalars(result, next)
			if err != nil {
				return nil, err
			}
		case p.startsImplicitFactor():
			next, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			result, err = MultiplyScalars(result, next)
			if err != nil {
				return nil, err
			}
		default:
			return result, nil
		}
	}
}

// startsImplicitFactor reports whether the parser is positioned at the
// start of a juxtaposed factor, e.g. the "sin(x)" in "2 sin(x)", beyond
// the already-consumed leading unit of a numeric literal.
func (p *exprParser) startsImplicitFactor() bool {
	r := p.peek()
	return r == '(' || isSymbolStart(r)
}

func (p *exprParser) parseUnary() (*Scalar, error) {
	p.skipSpace()
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return SubtractScalars(NewScalarFloat64(0, v.unit), v)
	}
	if p.peek() == '+' {
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (*Scalar, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	expValue, ok := exp.Float64Value()
	if !ok || expValue != math.Trunc(expValue) {
		return nil, newError(KindNonIntegerPower, "exponent must be a real integer, got %v", exp.ComplexValue())
	}
	return PowerScalar(base, int(expValue))
}

func (p *exprParser) parsePostfix() (*Scalar, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() == '!' {
		p.pos++
		vPlusOne, err := AddScalars(v, NewScalarFloat64(1, v.unit))
		if err != nil {
			return nil, err
		}
		return GammaScalar(vPlusOne)
	}
	return v, nil
}

func (p *exprParser) parsePrimary() (*Scalar, error) {
	p.skipSpace()
	switch {
	case p.peek() == '(':
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, newError(KindParseError, "unterminated group in expression")
		}
		p.pos++
		return p.attachTrailingUnit(inner)
	case isDigit(p.peek()) || (p.peek() == '.' && isDigit(p.peekAt(1))):
		return p.parseNumberWithUnit()
	case isSymbolStart(p.peek()):
		return p.parseIdentifierExpr()
	default:
		return nil, newError(KindParseError, "unexpected character %q in expression", p.peek())
	}
}

func (p *exprParser) parseNumberWithUnit() (*Scalar, error) {
	start := p.pos
	for !p.atEnd() && isDigit(p.peek()) {
		p.pos++
	}
	if p.peek() == '.' {
		p.pos++
		for !p.atEnd() && isDigit(p.peek()) {
			p.pos++
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		save := p.pos
		p.pos++
		if p.peek() == '+' || p.peek() == '-' {
			p.pos++
		}
		if isDigit(p.peek()) {
			for !p.atEnd() && isDigit(p.peek()) {
				p.pos++
			}
		} else {
			p.pos = save
		}
	}
	literal := string(p.runes[start:p.pos])
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, newError(KindParseError, "invalid numeric literal %q", literal)
	}
	return p.attachTrailingUnit(NewScalarFloat64(value, nil)) // unit resolved below
}

// attachTrailingUnit checks for a juxtaposed unit expression
// immediately following (no binary operator between) and, if found,
// attaches it to v; otherwise v keeps a dimensionless unit.
func (p *exprParser) attachTrailingUnit(v *Scalar) (*Scalar, error) {
	savedPos := p.pos
	p.skipSpace()
	if !isSymbolStart(p.peek()) || p.isFunctionCallAhead() {
		p.pos = savedPos
		return withDimensionlessFallback(v)
	}
	end := scanUnitRun(p.runes, p.pos)
	if end == p.pos {
		p.pos = savedPos
		return withDimensionlessFallback(v)
	}
	unit, err := ParseUnit(string(p.runes[p.pos:end]))
	if err != nil {
		p.pos = savedPos
		return withDimensionlessFallback(v)
	}
	p.pos = end
	return rebaseScalar(v, unit), nil
}

func withDimensionlessFallback(v *Scalar) (*Scalar, error) {
	if v.unit != nil {
		return v, nil
	}
	u, err := defaultRegistry.CoherentUnitForDimensionality(DimensionDimensionless)
	if err != nil {
		return nil, err
	}
	return rebaseScalar(v, u), nil
}

// rebaseScalar reattaches v's raw numeric value to unit without any
// coherent-unit conversion, since v has no prior unit to convert from.
func rebaseScalar(v *Scalar, unit *Unit) *Scalar {
	return newScalarValue(v.kind, v.ComplexValue(), unit)
}

// isFunctionCallAhead reports whether the parser is looking at an
// identifier immediately followed by "(", meaning it is a function call
// rather than a juxtaposed unit (so "5 sin(x)" multiplies by sin(x)
// instead of treating "sin" as an unknown unit symbol).
func (p *exprParser) isFunctionCallAhead() bool {
	i := p.pos
	for i < len(p.runes) && isSymbolChar(p.runes[i]) {
		i++
	}
	name := string(p.runes[p.pos:i])
	if !isKnownFunction(name) {
		return false
	}
	for i < len(p.runes) && unicode.IsSpace(p.runes[i]) {
		i++
	}
	return i < len(p.runes) && p.runes[i] == '('
}

func (p *exprParser) parseIdentifierExpr() (*Scalar, error) {
	start := p.pos
	for !p.atEnd() && isSymbolChar(p.peek()) {
		p.pos++
	}
	name := string(p.runes[start:p.pos])
	p.skipSpace()
	if p.peek() == '(' {
		return p.parseCall(name)
	}
	if c, ok := namedConstant(name); ok {
		return c, nil
	}
	unit, err := resolveUnitSymbol(name)
	if err != nil {
		return nil, err
	}
	return NewScalarFloat64(1, unit), nil
}

func (p *exprParser) parseCall(name string) (*Scalar, error) {
	p.pos++ // consume '('
	if isPeriodicTableFunction(name) {
		return p.parsePeriodicTableCall(name)
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	return applyFunction(name, args)
}

func (p *exprParser) parseArgList() ([]*Scalar, error) {
	var args []*Scalar
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if p.peek() != ')' {
			return nil, newError(KindParseError, "expected ',' or ')' in argument list")
		}
		p.pos++
		return args, nil
	}
}

func (p *exprParser) parsePeriodicTableCall(name string) (*Scalar, error) {
	p.skipSpace()
	start := p.pos
	if p.peek() == '"' {
		p.pos++
		start = p.pos
		for !p.atEnd() && p.peek() != '"' {
			p.pos++
		}
		symbol := string(p.runes[start:p.pos])
		if p.peek() != '"' {
			return nil, newError(KindParseError, "unterminated string literal in %s(...)", name)
		}
		p.pos++
		p.skipSpace()
		if p.peek() != ')' {
			return nil, newError(KindParseError, "expected ')' after %s(\"%s\"", name, symbol)
		}
		p.pos++
		return callPeriodicTableFunction(name, symbol)
	}
	for !p.atEnd() && isSymbolChar(p.peek()) {
		p.pos++
	}
	symbol := string(p.runes[start:p.pos])
	p.skipSpace()
	if p.peek() != ')' {
		return nil, newError(KindParseError, "expected ')' after %s(%s", name, symbol)
	}
	p.pos++
	return callPeriodicTableFunction(name, symbol)
}

func callPeriodicTableFunction(name, symbol string) (*Scalar, error) {
	switch name {
	case "aw", "fw":
		return periodicTable.AtomicWeight(symbol)
	case "nuclidemass":
		return periodicTable.NuclideMass(symbol)
	case "spin":
		return periodicTable.NuclearSpin(symbol)
	default:
		return nil, newError(KindUnknownConstant, "unknown constant function %q", name)
	}
}

func isPeriodicTableFunction(name string) bool {
	switch name {
	case "aw", "fw", "nuclidemass", "spin":
		return true
	default:
		return false
	}
}

func isKnownFunction(name string) bool {
	switch name {
	case "sin", "cos", "tan", "asin", "acos", "atan", "exp", "ln", "log", "log10",
		"sqrt", "cbrt", "root", "abs", "conj", "re", "im", "gamma",
		"aw", "fw", "nuclidemass", "spin":
		return true
	default:
		return false
	}
}

func applyFunction(name string, args []*Scalar) (*Scalar, error) {
	arg0 := func() (*Scalar, error) {
		if len(args) != 1 {
			return nil, newError(KindParseError, "%s() takes exactly one argument", name)
		}
		return args[0], nil
	}
	requireDimensionless := func(s *Scalar) (float64, error) {
		if !s.unit.dimension.IsDimensionless() {
			return 0, newError(KindDomain, "%s() requires a dimensionless argument, got %q", name, s.unit.dimension.Symbol())
		}
		v, _ := s.Float64Value()
		return v, nil
	}

	switch name {
	case "sin", "cos", "tan", "asin", "acos", "atan", "exp", "ln", "log10":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		v, err := requireDimensionless(a)
		if err != nil {
			return nil, err
		}
		return NewScalarFloat64(applyMathFunc(name, v), a.unit), nil
	case "log":
		if len(args) != 1 {
			return nil, newError(KindParseError, "log() takes exactly one argument")
		}
		v, err := requireDimensionless(args[0])
		if err != nil {
			return nil, err
		}
		return NewScalarFloat64(math.Log(v), args[0].unit), nil
	case "sqrt":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return NthRootScalar(a, 2)
	case "cbrt":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return NthRootScalar(a, 3)
	case "root":
		if len(args) != 2 {
			return nil, newError(KindParseError, "root() takes exactly two arguments: value, n")
		}
		n, err := requireDimensionless(args[1])
		if err != nil {
			return nil, err
		}
		return NthRootScalar(args[0], int(n))
	case "abs":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return AbsoluteValue(a), nil
	case "conj":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return Conjugate(a), nil
	case "re":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return RealPart(a), nil
	case "im":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return ImaginaryPart(a), nil
	case "gamma":
		a, err := arg0()
		if err != nil {
			return nil, err
		}
		return GammaScalar(a)
	default:
		return nil, newError(KindUnknownConstant, "unknown function %q", name)
	}
}

func applyMathFunc(name string, v float64) float64 {
	switch name {
	case "sin":
		return math.Sin(v)
	case "cos":
		return math.Cos(v)
	case "tan":
		return math.Tan(v)
	case "asin":
		return math.Asin(v)
	case "acos":
		return math.Acos(v)
	case "atan":
		return math.Atan(v)
	case "exp":
		return math.Exp(v)
	case "ln":
		return math.Log(v)
	case "log10":
		return math.Log10(v)
	default:
		return v
	}
}

// namedConstant resolves bare identifiers that denote fixed physical or
// mathematical constants rather than units, e.g. "pi" or "NA".
func namedConstant(name string) (*Scalar, bool) {
	dimensionless, _ := defaultRegistry.CoherentUnitForDimensionality(DimensionDimensionless)
	switch name {
	case "pi":
		return NewScalarFloat64(math.Pi, dimensionless), true
	case "e":
		return NewScalarFloat64(math.E, dimensionless), true
	case "c":
		if u, err := ParseUnit("m/s"); err == nil {
			return NewScalarFloat64(299792458, u), true
		}
	case "NA":
		if u, err := ParseUnit("1/mol"); err == nil {
			return NewScalarFloat64(6.02214076e23, u), true
		}
	case "kB":
		if u, err := ParseUnit("J/K"); err == nil {
			return NewScalarFloat64(1.380649e-23, u), true
		}
	case "h":
		if u, err := ParseUnit("J•s"); err == nil {
			return NewScalarFloat64(6.62607015e-34, u), true
		}
	case "R":
		if u, err := ParseUnit("J/(mol•K)"); err == nil {
			return NewScalarFloat64(8.31446261815324, u), true
		}
	}
	return nil, false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// scanUnitRun returns the exclusive end index of the maximal unit
// expression substring starting at pos: a symbol, optionally followed
// by "/" or "*"-family operators leading into another symbol or group,
// or "^" leading into an integer exponent. It never consumes an
// operator whose right-hand side does not itself look like a unit, so
// that arithmetic like "5 m / 2 s" stops the unit run after "m".
func scanUnitRun(runes []rune, pos int) int {
	i := pos
	consumeSymbol := func() bool {
		if i >= len(runes) || !isSymbolStart(runes[i]) {
			return false
		}
		i++
		for i < len(runes) && isSymbolChar(runes[i]) {
			i++
		}
		return true
	}
	consumeGroup := func() bool {
		if i >= len(runes) || runes[i] != '(' {
			return false
		}
		depth := 0
		for i < len(runes) {
			if runes[i] == '(' {
				depth++
			} else if runes[i] == ')' {
				depth--
				i++
				if depth == 0 {
					return true
				}
				continue
			}
			i++
		}
		return true
	}
	consumeExponent := func() bool {
		j := i
		if j < len(runes) && runes[j] == '^' {
			j++
			k := j
			if k < len(runes) && runes[k] == '(' {
				k++
			}
			if k < len(runes) && (runes[k] == '-' || runes[k] == '+') {
				k++
			}
			if k < len(runes) && isDigit(runes[k]) {
				for k < len(runes) && isDigit(runes[k]) {
					k++
				}
				if k < len(runes) && runes[k] == ')' {
					k++
				}
				i = k
				return true
			}
		}
		return false
	}

	if !consumeSymbol() && !consumeGroup() {
		return pos
	}
	consumeExponent()

	for {
		save := i
		j := i
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
			j++
		}
		isOp := j < len(runes) && strings.ContainsRune("•*×·⋅∙/÷∕⁄", runes[j])
		if !isOp {
			return i
		}
		j++
		for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
			j++
		}
		if j >= len(runes) || (!isSymbolStart(runes[j]) && runes[j] != '(') {
			return save
		}
		i = j
		if !consumeSymbol() && !consumeGroup() {
			return save
		}
		consumeExponent()
	}
}
