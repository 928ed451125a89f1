package cell

import (
	"go/parser"
	"go/token"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoc_VetCommandUsesImportPaths(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "doc.go", nil, parser.ParseComments|parser.PackageClauseOnly)
	require.NoError(t, err)
	require.NotNil(t, f.Doc)

	var funcs string
	for _, line := range strings.Split(f.Doc.Text(), "\n") {
		if _, after, ok := strings.Cut(line, "-unusedresult.funcs="); ok {
			funcs, _, _ = strings.Cut(after, " ")
		}
	}
	require.NotEmpty(t, funcs)

	pkg := reflect.TypeFor[Leak]().PkgPath()
	var names []string
	for _, fn := range strings.Split(funcs, ",") {
		name, ok := strings.CutPrefix(fn, pkg+".")
		require.True(t, ok, "%q is not qualified by %s", fn, pkg)
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"New", "From", "Make", "MakeWith"}, names)
}
