package evaluator

import (
	"errors"
	"fmt"
	"log/slog"

	"moss/internal/lexer"
	"moss/internal/object"
	"moss/internal/parser"
)

var (
	NIL   = object.NIL
	TRUE  = object.TRUE
	FALSE = object.FALSE
)

// DefaultMaxDepth bounds evaluation depth so runaway recursion surfaces as an
// error value instead of exhausting the native stack.
const DefaultMaxDepth = 5000

type Evaluator struct {
	// MaxDepth is the evaluation depth budget. Zero disables the guard.
	MaxDepth int

	depth    int
	envStack []*object.Environment
}

func New() *Evaluator {
	return &Evaluator{MaxDepth: DefaultMaxDepth}
}

func (e *Evaluator) PushEnv(env *object.Environment) {
	e.envStack = append(e.envStack, env)
}

func (e *Evaluator) CurrentEnv() *object.Environment {
	if len(e.envStack) == 0 {
		panic("Environment stack is empty in the current frame")
	}
	return e.envStack[len(e.envStack)-1]
}

func (e *Evaluator) PopEnv() {
	if len(e.envStack) == 0 {
		panic("Attempted to pop from an empty environment stack")
	}
	e.envStack = e.envStack[:len(e.envStack)-1]
}

// EvalProgram runs src against env with a fresh default-budget evaluator.
func EvalProgram(src string, env *object.Environment) (object.Object, error) {
	return New().EvalProgram(src, env)
}

// EvalProgram tokenizes, parses, and evaluates src against env. env persists
// across calls, so a caller can accumulate bindings line by line. Evaluation
// failures travel as *object.Error values internally and convert to a Go
// error here, at the boundary.
func (e *Evaluator) EvalProgram(src string, env *object.Environment) (object.Object, error) {
	program, err := parser.New(lexer.Tokenize(src)).ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	e.PushEnv(env)
	defer e.PopEnv()

	slog.Info(" ---- begin ----")
	defer slog.Info(" ---- done ----")

	result := e.Eval(program)
	if errObj, ok := result.(*object.Error); ok {
		return nil, errors.New(errObj.Message)
	}
	return result, nil
}

func (e *Evaluator) Eval(expr object.Object) object.Object {
	if e.MaxDepth > 0 {
		e.depth++
		defer func() { e.depth-- }()
		if e.depth > e.MaxDepth {
			return newError("maximum recursion depth %d exceeded", e.MaxDepth)
		}
	}

	switch expr := expr.(type) {

	case *object.Nil:
		return expr

	case *object.Integer:
		return expr

	case *object.Boolean:
		return expr

	case *object.Lambda:
		return expr

	case *object.Symbol:
		return e.evalSymbol(expr)

	case *object.List:
		return e.evalList(expr)

	default:
		return newError("cannot evaluate: %s", expr.Type())
	}
}

func (e *Evaluator) evalSymbol(sym *object.Symbol) object.Object {
	// Reserved names win over bindings of the same name.
	switch sym.Name {
	case "NIL":
		return NIL
	case "T":
		return TRUE
	case "F":
		return FALSE
	}

	if val, ok := e.CurrentEnv().Get(sym.Name); ok {
		return val
	}
	return newError("unbound symbol: %s", sym.Name)
}

func (e *Evaluator) evalList(list *object.List) object.Object {
	if len(list.Elements) == 0 {
		return NIL
	}

	head, ok := list.Elements[0].(*object.Symbol)
	if !ok {
		return e.evalDataList(list)
	}

	// Special forms shadow any binding carrying the same name.
	args := list.Elements[1:]
	switch head.Name {
	case "+", "-", "*", "/", "<", ">", "==", "!=":
		return e.evalBinaryOp(head.Name, args)
	case "define":
		return e.evalDefine(args)
	case "if":
		return e.evalIf(args)
	case "lambda":
		return e.evalLambda(args)
	case "atom":
		return e.evalAtom(args)
	case "quote":
		return e.evalQuote(args)
	case "cons":
		return e.evalCons(args)
	case "car":
		return e.evalCar(args)
	case "cdr":
		return e.evalCdr(args)
	case "progn":
		return e.evalProgn(args)
	default:
		return e.evalCall(head, args)
	}
}

// evalDataList evaluates every element of a list whose head is not a symbol.
// Nil results are dropped, so recursive list builders terminate without
// accumulating Nil tails.
func (e *Evaluator) evalDataList(list *object.List) object.Object {
	var elements []object.Object
	for _, expr := range list.Elements {
		result := e.Eval(expr)
		if isError(result) {
			return result
		}
		if result.Type() == object.NIL_OBJ {
			continue
		}
		elements = append(elements, result)
	}
	return &object.List{Elements: elements}
}

func (e *Evaluator) evalBinaryOp(op string, args []object.Object) object.Object {
	if len(args) != 2 {
		return newError("wrong number of arguments for %s. got=%d, want=%d",
			op, len(args), 2)
	}

	left := e.Eval(args[0])
	if isError(left) {
		return left
	}
	leftVal, ok := left.(*object.Integer)
	if !ok {
		return newError("left operand of %s must be an INTEGER, got %s", op, left.Type())
	}

	right := e.Eval(args[1])
	if isError(right) {
		return right
	}
	rightVal, ok := right.(*object.Integer)
	if !ok {
		return newError("right operand of %s must be an INTEGER, got %s", op, right.Type())
	}

	switch op {
	case "+":
		return &object.Integer{Value: leftVal.Value + rightVal.Value}
	case "-":
		return &object.Integer{Value: leftVal.Value - rightVal.Value}
	case "*":
		return &object.Integer{Value: leftVal.Value * rightVal.Value}
	case "/":
		if rightVal.Value == 0 {
			return newError("cannot divide by 0")
		}
		return &object.Integer{Value: leftVal.Value / rightVal.Value}
	case "<":
		return nativeBoolToBooleanObject(leftVal.Value < rightVal.Value)
	case ">":
		return nativeBoolToBooleanObject(leftVal.Value > rightVal.Value)
	case "==":
		return nativeBoolToBooleanObject(leftVal.Value == rightVal.Value)
	case "!=":
		return nativeBoolToBooleanObject(leftVal.Value != rightVal.Value)
	default:
		return newError("unknown operator: %s", op)
	}
}

func (e *Evaluator) evalDefine(args []object.Object) object.Object {
	if len(args) != 2 {
		return newError("wrong number of arguments for define. got=%d, want=%d",
			len(args), 2)
	}

	sym, ok := args[0].(*object.Symbol)
	if !ok {
		return newError("first argument to define must be a SYMBOL, got %s",
			args[0].Type())
	}

	val := e.Eval(args[1])
	if isError(val) {
		return val
	}

	e.CurrentEnv().Define(sym.Name, val)
	return NIL
}

func (e *Evaluator) evalIf(args []object.Object) object.Object {
	if len(args) != 3 {
		return newError("wrong number of arguments for if. got=%d, want=%d",
			len(args), 3)
	}

	cond := e.Eval(args[0])
	if isError(cond) {
		return cond
	}
	boolean, ok := cond.(*object.Boolean)
	if !ok {
		return newError("if condition must be a BOOLEAN, got %s", cond.Type())
	}

	// Exactly one branch is evaluated.
	if boolean.Value {
		return e.Eval(args[1])
	}
	return e.Eval(args[2])
}

func (e *Evaluator) evalLambda(args []object.Object) object.Object {
	if len(args) != 2 {
		return newError("wrong number of arguments for lambda. got=%d, want=%d",
			len(args), 2)
	}

	paramList, ok := args[0].(*object.List)
	if !ok {
		return newError("lambda parameters must be a LIST, got %s", args[0].Type())
	}
	params := make([]string, 0, len(paramList.Elements))
	for _, param := range paramList.Elements {
		sym, ok := param.(*object.Symbol)
		if !ok {
			return newError("lambda parameter must be a SYMBOL, got %s", param.Type())
		}
		params = append(params, sym.Name)
	}

	body, ok := args[1].(*object.List)
	if !ok {
		return newError("lambda body must be a LIST, got %s", args[1].Type())
	}

	// The defining environment is captured here and extended at call time.
	return &object.Lambda{Parameters: params, Body: body, Env: e.CurrentEnv()}
}

func (e *Evaluator) evalAtom(args []object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments for atom. got=%d, want=%d",
			len(args), 1)
	}

	val := e.Eval(args[0])
	if isError(val) {
		return val
	}

	switch val.Type() {
	case object.NIL_OBJ, object.BOOLEAN_OBJ, object.INTEGER_OBJ, object.SYMBOL_OBJ:
		return TRUE
	default:
		return FALSE
	}
}

func (e *Evaluator) evalQuote(args []object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments for quote. got=%d, want=%d",
			len(args), 1)
	}
	return args[0]
}

func (e *Evaluator) evalCons(args []object.Object) object.Object {
	if len(args) != 2 {
		return newError("wrong number of arguments for cons. got=%d, want=%d",
			len(args), 2)
	}

	head := e.Eval(args[0])
	if isError(head) {
		return head
	}

	tail := e.Eval(args[1])
	if isError(tail) {
		return tail
	}

	switch tail := tail.(type) {
	case *object.List:
		elements := make([]object.Object, 0, len(tail.Elements)+1)
		elements = append(elements, head)
		elements = append(elements, tail.Elements...)
		return &object.List{Elements: elements}
	case *object.Nil:
		return &object.List{Elements: []object.Object{head}}
	default:
		return newError("second argument to cons must be a LIST or NIL, got %s",
			tail.Type())
	}
}

func (e *Evaluator) evalCar(args []object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments for car. got=%d, want=%d",
			len(args), 1)
	}

	val := e.Eval(args[0])
	if isError(val) {
		return val
	}
	list, ok := val.(*object.List)
	if !ok {
		return newError("argument to car must be a LIST, got %s", val.Type())
	}
	if len(list.Elements) == 0 {
		return newError("car of empty list")
	}

	// The stored element is returned as-is, not evaluated a second time.
	return list.Elements[0]
}

func (e *Evaluator) evalCdr(args []object.Object) object.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments for cdr. got=%d, want=%d",
			len(args), 1)
	}

	val := e.Eval(args[0])
	if isError(val) {
		return val
	}
	list, ok := val.(*object.List)
	if !ok {
		return newError("argument to cdr must be a LIST, got %s", val.Type())
	}
	if len(list.Elements) <= 1 {
		return NIL
	}
	return &object.List{Elements: list.Elements[1:]}
}

func (e *Evaluator) evalProgn(args []object.Object) object.Object {
	var result object.Object = NIL
	for _, expr := range args {
		result = e.Eval(expr)
		if isError(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalCall(head *object.Symbol, args []object.Object) object.Object {
	fn, ok := e.CurrentEnv().Get(head.Name)
	if !ok {
		return newError("unbound function: %s", head.Name)
	}
	lambda, ok := fn.(*object.Lambda)
	if !ok {
		return newError("not a lambda: %s", head.Name)
	}

	if len(args) != len(lambda.Parameters) {
		return newError("wrong number of arguments for %s. got=%d, want=%d",
			head.Name, len(args), len(lambda.Parameters))
	}

	// Arguments are evaluated in the caller's environment; the call frame
	// extends the environment the lambda captured when it was created.
	frame := object.NewEnclosedEnvironment(lambda.Env)
	for i, param := range lambda.Parameters {
		val := e.Eval(args[i])
		if isError(val) {
			return val
		}
		frame.Define(param, val)
	}

	slog.Debug("applying lambda", slog.String("name", head.Name))

	e.PushEnv(frame)
	result := e.Eval(lambda.Body)
	e.PopEnv()

	return result
}

func nativeBoolToBooleanObject(input bool) *object.Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

func newError(format string, a ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ERROR_OBJ
	}
	return false
}
