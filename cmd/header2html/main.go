// Command header2html renders a Go source file's top-level declarations
// and their doc comments as an HTML page: an index of declarations
// followed by a body pairing each declaration's header line (see
// signatureOf) with its doc comment, with Go keyword highlighting and
// HTML escaping. Type names are not highlighted.
package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"html"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// declaration pairs one top-level declaration's rendered signature with
// its doc comment, in source order.
type declaration struct {
	name      string
	signature string
	doc       string
}

var goKeywords = map[string]bool{
	"func": true, "type": true, "struct": true, "interface": true,
	"const": true, "var": true, "map": true, "chan": true, "return": true,
	"package": true, "import": true,
}

func extractDeclarations(path string) ([]declaration, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var decls []declaration
	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.FuncDecl:
			if decl.Doc == nil {
				continue
			}
			decls = append(decls, declaration{
				name:      decl.Name.Name,
				signature: signatureOf(decl),
				doc:       decl.Doc.Text(),
			})
		case *ast.GenDecl:
			if decl.Doc == nil {
				continue
			}
			for _, spec := range decl.Specs {
				name := specName(spec)
				if name == "" {
					continue
				}
				decls = append(decls, declaration{
					name:      name,
					signature: signatureOf(decl),
					doc:       decl.Doc.Text(),
				})
			}
		}
	}
	return decls, nil
}

func specName(spec ast.Spec) string {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		return s.Name.Name
	case *ast.ValueSpec:
		if len(s.Names) > 0 {
			return s.Names[0].Name
		}
	}
	return ""
}

// signatureOf renders a declaration's own header: "func <name>" for a
// func (with a literal "(recv)" placeholder before the name of a method)
// or "<tok> <name>, ..." for a type/const/var, never the body. Parameter
// lists, result types and type definitions are not rendered.
func signatureOf(node ast.Node) string {
	var b strings.Builder
	switch d := node.(type) {
	case *ast.FuncDecl:
		b.WriteString("func ")
		if d.Recv != nil {
			b.WriteString("(recv) ")
		}
		b.WriteString(d.Name.Name)
	case *ast.GenDecl:
		b.WriteString(d.Tok.String())
		b.WriteString(" ")
		for i, spec := range d.Specs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(specName(spec))
		}
	}
	return b.String()
}

func highlightSignature(sig string) string {
	words := strings.Fields(sig)
	for i, w := range words {
		escaped := html.EscapeString(w)
		if goKeywords[w] {
			words[i] = `<span class="kw">` + escaped + `</span>`
		} else {
			words[i] = escaped
		}
	}
	return strings.Join(words, " ")
}

func renderHTML(title string, decls []declaration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html><head><title>%s</title></head><body>\n", html.EscapeString(title))

	b.WriteString("<h1>Index</h1>\n<ul>\n")
	for _, d := range decls {
		fmt.Fprintf(&b, `<li><a href="#%s">%s</a></li>`+"\n", html.EscapeString(d.name), html.EscapeString(d.name))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h1>Declarations</h1>\n")
	for _, d := range decls {
		fmt.Fprintf(&b, `<div id="%s"><pre>%s</pre><p>%s</p></div>`+"\n",
			html.EscapeString(d.name), highlightSignature(d.signature), html.EscapeString(d.doc))
	}

	b.WriteString("</body></html>\n")
	return b.String()
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "header2html <file.go>",
		Short: "Render a Go source file's documented declarations as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}

			decls, err := extractDeclarations(path)
			if err != nil {
				return err
			}
			log.Info().Str("file", path).Int("declarations", len(decls)).Msg("rendering")

			fmt.Print(renderHTML(path, decls))
			return nil
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("header2html failed")
		os.Exit(1)
	}
}
