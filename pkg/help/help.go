// Package help holds the static reference text shown by the REPL's :help
// command and the `monkey help [topic]` CLI subcommand.
package help

import "strings"

// QUICKREF is printed by `monkey help` with no topic argument.
const QUICKREF = `Monkey v0.1 quick reference

  let x = 5;                let binds a name in the current scope
  return x;                 returns from the enclosing function
  fn(x, y) { x + y }        function literal (a closure)
  if (x > 0) { x } else { -x }

Topics: syntax, types, builtins, errors

Use ":help <topic>" in the REPL, or "monkey help <topic>" on the
command line, for more detail on any of the above.
`

// Topics maps a topic name to its help text.
var Topics = map[string]string{
	"syntax": `syntax
  program   = statement*
  statement = let | return | expr
  let       = "let" IDENT "=" expr ";"?
  return    = "return" expr ";"?
  block     = "{" statement* "}"
  Identifiers: [A-Za-z_][A-Za-z_]*   Integers: [0-9]+   Strings: "..."
`,
	"types": `types
  Integer, Boolean, Null, String, Array, Hash, Function, Builtin
  Hashable kinds (valid as Hash keys): Integer, Boolean, String.
`,
	"builtins": `builtins
  len(x)        String or Array -> Integer
  first(arr)    Array -> element 0, or null if empty
  last(arr)     Array -> last element, or null if empty
  rest(arr)     Array -> new Array dropping the first element
  push(arr, v)  Array, Value -> new Array with v appended
  puts(...)     any -> writes each argument's string form, returns null
`,
	"errors": `errors
  identifier not found: <name>
  wrong number of arguments for <name>: expected <N>, got <M>
  wrong argument type for <name>: expected <TYPE>, got <TYPE>
  division by zero
  wrong operand type for <op>: <op><TYPE>
  wrong operand types for <op>: <L> <op> <R>
  wrong index types for []: <L>[<R>]
`,
}

// TopicList is the stable display order for QUICKREF and error hints.
var TopicList = []string{"syntax", "types", "builtins", "errors"}

// MatchTopic resolves name to a topic by exact match, then unique prefix.
// Matching against the exact reserved words "constructor" and "__proto__"
// is refused even though neither is a registered topic, guarding against a
// caller that forwards a JS-object-shaped lookup key into this map.
func MatchTopic(name string) (string, string, error) {
	if name == "constructor" || name == "__proto__" {
		return "", "", &UnknownTopicError{Name: name}
	}
	if content, ok := Topics[name]; ok {
		return name, content, nil
	}

	var matched string
	count := 0
	for _, topic := range TopicList {
		if strings.HasPrefix(topic, name) {
			matched = topic
			count++
		}
	}
	if count == 1 {
		return matched, Topics[matched], nil
	}
	return "", "", &UnknownTopicError{Name: name}
}

// UnknownTopicError reports a help topic with no exact or unique-prefix match.
type UnknownTopicError struct {
	Name string
}

func (e *UnknownTopicError) Error() string {
	return "unknown help topic: " + e.Name
}
