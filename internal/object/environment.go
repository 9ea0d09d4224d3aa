package object

import "log/slog"

// Environment is one frame of the lexical scope chain: the bindings
// introduced at this scope plus a link to the enclosing frame. Frames are
// shared by reference, so a Define is visible to every holder of the frame;
// nothing ever deletes a binding.
type Environment struct {
	Bindings map[string]Object
	Outer    *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Bindings: make(map[string]Object)}
}

// NewEnclosedEnvironment initializes an empty frame whose lookups fall
// through to outer. Several frames may share the same outer at once.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	slog.Debug("------ new env ------")
	env := NewEnvironment()
	env.Outer = outer
	return env
}

// Get walks the chain innermost-first and returns the nearest binding.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.Bindings[name]
	if !ok && e.Outer != nil {
		return e.Outer.Get(name)
	}
	return obj, ok
}

// Define adds a binding with the given name and value to this frame only,
// overwriting any previous binding of the same name. Enclosing frames are
// never written; there is no assignment-to-enclosing-scope operation.
func (e *Environment) Define(name string, val Object) Object {
	e.Bindings[name] = val
	slog.Debug("binding value",
		slog.String("name", name),
		slog.String("type", string(val.Type())))
	return val
}
