// Package mir defines the mid-level IR: the same shape as ast, plus a
// Type slot on every Expr. It is produced by Lower, narrowed in place by
// typecheck.Check, and consumed by codegen. Expr variants are held behind
// pointers specifically so that substitution can mutate each node's Ty
// slot in place post-unification, per spec §4.3/§9 ("Applying
// substitution to the MIR mutates every ty slot in place").
package mir

import "slc/src/common"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Program is an ordered sequence of top-level declarations.
type Program struct {
	Decls []TopDecl
}

// TopDecl is implemented by Extern, Fn and Struct.
type TopDecl interface {
	topDecl()
}

// Extern carries its declared signature unchanged from the AST.
type Extern struct {
	Name string
	Type common.Type
}

// Fn carries its declared parameter and return types unchanged from the
// AST; only the body's expression types are inferred.
type Fn struct {
	Name string
	Args []common.Arg
	Ret  common.Type
	Body []Stmt
}

// Struct carries its declared field types unchanged from the AST.
type Struct struct {
	Name   string
	Fields []common.Field
}

func (Extern) topDecl() {}
func (Fn) topDecl()     {}
func (Struct) topDecl() {}

// Stmt is implemented by Assign, ExprStmt, If, While and Return.
type Stmt interface {
	stmt()
}

// Assign preserves the IsRebind flag set during parsing: false introduces
// a new name in the innermost scope, true updates an existing binding.
type Assign struct {
	IsRebind bool
	Name     string
	Expr     Expr
}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

// If runs Then when Cond is non-zero, otherwise Else if present.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// While repeats Body while Cond is non-zero.
type While struct {
	Cond Expr
	Body []Stmt
}

// Return exits the enclosing function, optionally with a value.
type Return struct {
	Expr Expr // nil for a bare `return`
}

func (*Assign) stmt()   {}
func (*ExprStmt) stmt() {}
func (*If) stmt()       {}
func (*While) stmt()    {}
func (*Return) stmt()   {}

// Expr is implemented by every expression variant via a pointer receiver,
// so that typecheck's substitution pass can narrow Ty in place. Each
// carries exactly one Type slot; GetType returns it, satisfying
// common.Typed.
type Expr interface {
	common.Typed
	expr()
	typeSlot() *common.Type
}

// Call invokes a named function. Name must resolve to a Fn-typed
// signature during type checking.
type Call struct {
	Name string
	Args []Expr
	Ty   common.Type
}

// GetType implements common.Typed.
func (c *Call) GetType() common.Type  { return c.Ty }
func (c *Call) typeSlot() *common.Type { return &c.Ty }

// Literal wraps a concrete int or string constant.
type Literal struct {
	Value common.Literal
	Ty    common.Type
}

// GetType implements common.Typed.
func (l *Literal) GetType() common.Type  { return l.Ty }
func (l *Literal) typeSlot() *common.Type { return &l.Ty }

// Name is a reference to a bound identifier.
type Name struct {
	Value string
	Ty    common.Type
}

// GetType implements common.Typed.
func (n *Name) GetType() common.Type  { return n.Ty }
func (n *Name) typeSlot() *common.Type { return &n.Ty }

// Equals and NotEquals always type to Bool; the other three binary
// operators type to their (unified) operand type.
type Equals struct {
	Left, Right Expr
	Ty          common.Type
}

func (e *Equals) GetType() common.Type  { return e.Ty }
func (e *Equals) typeSlot() *common.Type { return &e.Ty }

type NotEquals struct {
	Left, Right Expr
	Ty          common.Type
}

func (e *NotEquals) GetType() common.Type  { return e.Ty }
func (e *NotEquals) typeSlot() *common.Type { return &e.Ty }

type Plus struct {
	Left, Right Expr
	Ty          common.Type
}

func (e *Plus) GetType() common.Type  { return e.Ty }
func (e *Plus) typeSlot() *common.Type { return &e.Ty }

type Minus struct {
	Left, Right Expr
	Ty          common.Type
}

func (e *Minus) GetType() common.Type  { return e.Ty }
func (e *Minus) typeSlot() *common.Type { return &e.Ty }

type Times struct {
	Left, Right Expr
	Ty          common.Type
}

func (e *Times) GetType() common.Type  { return e.Ty }
func (e *Times) typeSlot() *common.Type { return &e.Ty }

func (*Call) expr()      {}
func (*Literal) expr()   {}
func (*Name) expr()      {}
func (*Equals) expr()    {}
func (*NotEquals) expr() {}
func (*Plus) expr()      {}
func (*Minus) expr()     {}
func (*Times) expr()     {}

// SetType overwrites a node's Ty slot in place through the Expr
// interface, used by typecheck's substitution pass.
func SetType(e Expr, t common.Type) {
	*e.typeSlot() = t
}
