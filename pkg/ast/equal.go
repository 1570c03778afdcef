package ast

// Equal reports deep, order-sensitive structural equality between two AST
// nodes, with one exception: HashLiteral pairs compare order-insensitively
// (spec: "the AST itself does not deduplicate" hash keys, but two hashes
// written with their pairs in a different order are still the same tree).
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case *Program:
		bv, ok := b.(*Program)
		return ok && stmtsEqual(av.Statements, bv.Statements)
	case *LetStatement:
		bv, ok := b.(*LetStatement)
		return ok && Equal(av.Name, bv.Name) && Equal(av.Value, bv.Value)
	case *ReturnStatement:
		bv, ok := b.(*ReturnStatement)
		return ok && Equal(av.Value, bv.Value)
	case *ExpressionStatement:
		bv, ok := b.(*ExpressionStatement)
		return ok && Equal(av.Expr, bv.Expr)
	case *BlockStatement:
		bv, ok := b.(*BlockStatement)
		return ok && stmtsEqual(av.Statements, bv.Statements)
	case *Identifier:
		bv, ok := b.(*Identifier)
		return ok && av.Value == bv.Value
	case *IntegerLiteral:
		bv, ok := b.(*IntegerLiteral)
		return ok && av.Value == bv.Value
	case *BooleanLiteral:
		bv, ok := b.(*BooleanLiteral)
		return ok && av.Value == bv.Value
	case *StringLiteral:
		bv, ok := b.(*StringLiteral)
		return ok && av.Value == bv.Value
	case *ArrayLiteral:
		bv, ok := b.(*ArrayLiteral)
		return ok && exprsEqual(av.Elements, bv.Elements)
	case *HashLiteral:
		bv, ok := b.(*HashLiteral)
		return ok && hashPairsEqual(av.Pairs, bv.Pairs)
	case *FunctionLiteral:
		bv, ok := b.(*FunctionLiteral)
		return ok && identsEqual(av.Params, bv.Params) && Equal(av.Body, bv.Body)
	case *MacroLiteral:
		bv, ok := b.(*MacroLiteral)
		return ok && identsEqual(av.Params, bv.Params) && Equal(av.Body, bv.Body)
	case *PrefixExpression:
		bv, ok := b.(*PrefixExpression)
		return ok && av.Operator == bv.Operator && Equal(av.Right, bv.Right)
	case *InfixExpression:
		bv, ok := b.(*InfixExpression)
		return ok && av.Operator == bv.Operator && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *IndexExpression:
		bv, ok := b.(*IndexExpression)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Index, bv.Index)
	case *IfExpression:
		bv, ok := b.(*IfExpression)
		if !ok || !Equal(av.Condition, bv.Condition) || !Equal(av.Consequence, bv.Consequence) {
			return false
		}
		if (av.Alternative == nil) != (bv.Alternative == nil) {
			return false
		}
		if av.Alternative == nil {
			return true
		}
		return Equal(av.Alternative, bv.Alternative)
	case *CallExpression:
		bv, ok := b.(*CallExpression)
		return ok && Equal(av.Callee, bv.Callee) && exprsEqual(av.Args, bv.Args)
	default:
		return false
	}
}

func stmtsEqual(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func exprsEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func identsEqual(a, b []*Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// hashPairsEqual treats the pair list as a set: every pair in a must have
// a matching (key, value) pair somewhere in b, and vice versa by length.
func hashPairsEqual(a, b []HashPair) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for j, pb := range b {
			if used[j] {
				continue
			}
			if Equal(pa.Key, pb.Key) && Equal(pa.Value, pb.Value) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
