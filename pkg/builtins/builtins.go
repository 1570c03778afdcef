// Package builtins implements the fixed, read-only registry of
// host-implemented functions seeded into the global environment
// (spec §4.6): len, first, last, rest, push, puts.
package builtins

import (
	"fmt"
	"io"

	"github.com/monkeylang/monkey/pkg/object"
)

// New builds the builtin registry. `puts` writes to out rather than a
// hardcoded os.Stdout so callers (tests, the REPL) control where output
// goes (spec §4.6: "writes ... to standard output"; the core itself has no
// notion of "standard output", only an injected writer).
func New(out io.Writer) map[string]*object.Builtin {
	return map[string]*object.Builtin{
		"len":   {Fn: lenFn},
		"first": {Fn: firstFn},
		"last":  {Fn: lastFn},
		"rest":  {Fn: restFn},
		"push":  {Fn: pushFn},
		"puts":  {Fn: putsFn(out)},
	}
}

func wrongArgCount(name string, want, got int) *object.Error {
	return object.Errorf("wrong number of arguments for %s: expected %d, got %d", name, want, got)
}

func wrongArgType(name string, want, got object.Type) *object.Error {
	return object.Errorf("wrong argument type for %s: expected %s, got %s", name, want, got)
}

func lenFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("len", 1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}
	default:
		return wrongArgType("len", object.STRING_OBJ, arg.Type())
	}
}

func firstFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("first", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return wrongArgType("first", object.ARRAY_OBJ, args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	return arr.Elements[0]
}

func lastFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("last", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return wrongArgType("last", object.ARRAY_OBJ, args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	return arr.Elements[len(arr.Elements)-1]
}

func restFn(args ...object.Object) object.Object {
	if len(args) != 1 {
		return wrongArgCount("rest", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return wrongArgType("rest", object.ARRAY_OBJ, args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return object.NULL
	}
	newElements := make([]object.Object, len(arr.Elements)-1)
	copy(newElements, arr.Elements[1:])
	return &object.Array{Elements: newElements}
}

func pushFn(args ...object.Object) object.Object {
	if len(args) != 2 {
		return wrongArgCount("push", 2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return wrongArgType("push", object.ARRAY_OBJ, args[0].Type())
	}
	newElements := make([]object.Object, len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements[len(arr.Elements)] = args[1]
	return &object.Array{Elements: newElements}
}

func putsFn(out io.Writer) object.BuiltinFunction {
	return func(args ...object.Object) object.Object {
		for _, arg := range args {
			fmt.Fprintln(out, arg.Inspect())
		}
		return object.NULL
	}
}
