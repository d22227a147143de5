package config

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExportedDeclsDocumented checks every exported const group and type in
// config.go carries a doc comment.
func TestExportedDeclsDocumented(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "config.go", nil, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok == token.IMPORT {
			continue
		}
		for _, spec := range gen.Specs {
			var name *ast.Ident
			var doc *ast.CommentGroup
			switch s := spec.(type) {
			case *ast.TypeSpec:
				name, doc = s.Name, s.Doc
			case *ast.ValueSpec:
				name, doc = s.Names[0], s.Doc
			}
			if name == nil || !name.IsExported() {
				continue
			}
			if doc == nil {
				doc = gen.Doc
			}
			assert.NotNil(t, doc, "%s has no doc comment", name.Name)
		}
	}
}
