package bigint_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// math/big is only allowed at the interop boundary. Arithmetic must be done
// on the package's own word vectors.
var mathBigAllowed = map[string]bool{
	"bigconv.go": true,
}

func TestArithmeticDoesNotImportMathBig(t *testing.T) {
	if os.Getenv("BIGINT_SKIP_IMPORTS") != "" {
		t.Skip()
	}

	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") || mathBigAllowed[file] {
			continue
		}

		f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatal(err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatal(err)
			}
			if path == "math/big" {
				t.Fatalf("%s imports math/big", file)
			}
		}
	}
}
