package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	NIL_OBJ     = "NIL"
	INTEGER_OBJ = "INTEGER"
	BOOLEAN_OBJ = "BOOLEAN"
	SYMBOL_OBJ  = "SYMBOL"
	LAMBDA_OBJ  = "LAMBDA"
	LIST_OBJ    = "LIST"
	ERROR_OBJ   = "ERROR"
)

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

type ObjectType string

// Object is the single representation shared by syntax and runtime values:
// the parser produces Objects and the evaluator consumes and returns them.
type Object interface {
	Type() ObjectType
	Inspect() string
}

type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "NIL" }

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

type Symbol struct {
	Name string
}

func (s *Symbol) Type() ObjectType { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string  { return s.Name }

// Lambda is a closure value: parameter names, an unevaluated body list, and
// the environment the lambda was defined in. Free symbols in the body resolve
// against Env when the lambda is applied.
type Lambda struct {
	Parameters []string
	Body       *List
	Env        *Environment
}

func (l *Lambda) Type() ObjectType { return LAMBDA_OBJ }
func (l *Lambda) Inspect() string {
	var out bytes.Buffer

	out.WriteString("Lambda(")
	out.WriteString(strings.Join(l.Parameters, " "))
	out.WriteString(") ")
	out.WriteString(l.Body.Inspect())

	return out.String()
}

// List doubles as syntactic grouping and as the runtime sequence value.
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("(")
	out.WriteString(strings.Join(elements, " "))
	out.WriteString(")")

	return out.String()
}

type Error struct {
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }
