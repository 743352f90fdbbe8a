// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package expr compiles a textual function of x, such as "sin(x) - x/2",
// into a function over derivative-tracking numbers.
//
// Sources use Go expression syntax: numeric literals, the variable x, the
// constants pi and e, the operators + - * / (binary) and + - (unary),
// parentheses, and calls to sin, cos, tan, exp, log, sqrt, sinh, cosh,
// tanh and pow(base, exponent).
package expr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/rootfinder/internal/dual"
)

var (
	// ErrSyntax means the source is not a valid expression.
	ErrSyntax = errors.New("syntax error")
	// ErrUnsupported means the source uses an identifier, operator or call
	// outside the supported set.
	ErrUnsupported = errors.New("unsupported construct")
)

// Variable is the name of the independent variable.
const Variable = "x"

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// unary lists the one-argument functions.
var unary = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"exp": true, "log": true, "sqrt": true,
	"sinh": true, "cosh": true, "tanh": true,
}

// Expr is a parsed and validated function source. It is immutable and safe
// for concurrent use.
type Expr struct {
	src  string
	root ast.Expr
}

// Parse parses and validates src.
func Parse(src string) (*Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	root, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := check(root); err != nil {
		return nil, err
	}
	return &Expr{src: src, root: root}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level constants.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the trimmed source.
func (e *Expr) String() string { return e.src }

// Func returns e as a function over N. The returned function is pure.
func Func[N dual.Arith[N]](e *Expr) func(N) N {
	return func(x N) N { return eval(e.root, x) }
}

func check(n ast.Expr) error {
	switch n := n.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return fmt.Errorf("%w: literal %s", ErrUnsupported, n.Value)
		}
		if _, err := strconv.ParseFloat(n.Value, 64); err != nil {
			return fmt.Errorf("%w: literal %s: %v", ErrSyntax, n.Value, err)
		}
		return nil
	case *ast.Ident:
		if n.Name == Variable {
			return nil
		}
		if _, ok := constants[n.Name]; ok {
			return nil
		}
		return fmt.Errorf("%w: identifier %q", ErrUnsupported, n.Name)
	case *ast.ParenExpr:
		return check(n.X)
	case *ast.UnaryExpr:
		if n.Op != token.ADD && n.Op != token.SUB {
			return fmt.Errorf("%w: unary operator %s", ErrUnsupported, n.Op)
		}
		return check(n.X)
	case *ast.BinaryExpr:
		switch n.Op {
		case token.ADD, token.SUB, token.MUL, token.QUO:
		default:
			return fmt.Errorf("%w: operator %s", ErrUnsupported, n.Op)
		}
		if err := check(n.X); err != nil {
			return err
		}
		return check(n.Y)
	case *ast.CallExpr:
		fn, ok := n.Fun.(*ast.Ident)
		if !ok {
			return fmt.Errorf("%w: call target", ErrUnsupported)
		}
		want := 1
		switch {
		case unary[fn.Name]:
		case fn.Name == "pow":
			want = 2
		default:
			return fmt.Errorf("%w: function %q", ErrUnsupported, fn.Name)
		}
		if len(n.Args) != want || n.Ellipsis.IsValid() {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrSyntax, fn.Name, want, len(n.Args))
		}
		for _, a := range n.Args {
			if err := check(a); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, n)
	}
}

func eval[N dual.Arith[N]](n ast.Expr, x N) N {
	switch n := n.(type) {
	case *ast.BasicLit:
		v, _ := strconv.ParseFloat(n.Value, 64)
		return x.Const(v)
	case *ast.Ident:
		if n.Name == Variable {
			return x
		}
		return x.Const(constants[n.Name])
	case *ast.ParenExpr:
		return eval(n.X, x)
	case *ast.UnaryExpr:
		v := eval(n.X, x)
		if n.Op == token.SUB {
			return v.Neg()
		}
		return v
	case *ast.BinaryExpr:
		l, r := eval(n.X, x), eval(n.Y, x)
		switch n.Op {
		case token.ADD:
			return l.Add(r)
		case token.SUB:
			return l.Sub(r)
		case token.MUL:
			return l.Mul(r)
		default:
			return l.Div(r)
		}
	case *ast.CallExpr:
		name := n.Fun.(*ast.Ident).Name
		if name == "pow" {
			return pow(n.Args[0], n.Args[1], x)
		}
		return apply(name, eval(n.Args[0], x))
	}
	panic(fmt.Sprintf("expr: unchecked node %T", n))
}

// pow uses PowReal when the exponent is constant and exp(y·log(b))
// otherwise.
func pow[N dual.Arith[N]](base, exponent ast.Expr, x N) N {
	b := eval(base, x)
	if p, ok := constant(exponent); ok {
		return b.PowReal(p)
	}
	return eval(exponent, x).Mul(b.Log()).Exp()
}

// constant folds sub-expressions that do not mention x.
func constant(n ast.Expr) (float64, bool) {
	switch n := n.(type) {
	case *ast.BasicLit:
		v, _ := strconv.ParseFloat(n.Value, 64)
		return v, true
	case *ast.Ident:
		v, ok := constants[n.Name]
		return v, ok
	case *ast.ParenExpr:
		return constant(n.X)
	case *ast.UnaryExpr:
		v, ok := constant(n.X)
		if n.Op == token.SUB {
			v = -v
		}
		return v, ok
	case *ast.BinaryExpr:
		l, lok := constant(n.X)
		r, rok := constant(n.Y)
		if !lok || !rok {
			return 0, false
		}
		switch n.Op {
		case token.ADD:
			return l + r, true
		case token.SUB:
			return l - r, true
		case token.MUL:
			return l * r, true
		default:
			return l / r, true
		}
	}
	return 0, false
}

func apply[N dual.Arith[N]](name string, v N) N {
	switch name {
	case "sin":
		return v.Sin()
	case "cos":
		return v.Cos()
	case "tan":
		return v.Tan()
	case "exp":
		return v.Exp()
	case "log":
		return v.Log()
	case "sqrt":
		return v.Sqrt()
	case "sinh":
		return v.Sinh()
	case "cosh":
		return v.Cosh()
	default:
		return v.Tanh()
	}
}
