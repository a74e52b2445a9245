// Package sema resolves identifier references against lexical scopes.
// One Analyze call owns its scope tree; nothing is shared across runs, so
// independent translation units may be analyzed concurrently.
package sema

import (
	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/common"
)

type Span = common.Span

type Symbol = ast.Symbol
