package ast

import (
	"strconv"
	"strings"
)

// Binding strength of a printed expression. Operands of weaker strength are parenthesized.
const (
	precTop = iota
	precBinary
	precCall
	precAtom
)

// ExprString returns the source form of e.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, precTop, e)
	return sb.String()
}

func exprPrec(e Expr) int {
	switch e.(type) {
	case *Bool, *Int, *Var:
		return precAtom
	case *Call:
		return precCall
	case *Binary:
		return precBinary
	}
	return precTop
}

func exprString(sb *strings.Builder, prec int, e Expr) {
	if exprPrec(e) < prec {
		sb.WriteByte('(')
		defer sb.WriteByte(')')
	}
	switch et := e.(type) {
	case *Bool:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Int:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *Var:
		sb.WriteString(et.Name)

	case *Func:
		sb.WriteString(et.Arg)
		sb.WriteString(" -> ")
		exprString(sb, precTop, et.Body)

	case *Call:
		exprString(sb, precCall, et.Func)
		sb.WriteByte(' ')
		exprString(sb, precAtom, et.Arg)

	case *Let:
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, precTop, et.Value)
		sb.WriteString(" in ")
		exprString(sb, precTop, et.Body)

	case *LetRec:
		sb.WriteString("let rec ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, precTop, et.Value)
		sb.WriteString(" in ")
		exprString(sb, precTop, et.Body)

	case *Binary:
		exprString(sb, precBinary, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op.String())
		sb.WriteByte(' ')
		exprString(sb, precCall, et.Right)

	case *If:
		sb.WriteString("if ")
		exprString(sb, precTop, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, precTop, et.Then)
		sb.WriteString(" else ")
		exprString(sb, precTop, et.Else)

	case nil:
		sb.WriteString("<nil>")
	}
}
