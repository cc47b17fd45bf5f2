package codec

import (
	"errors"
	"fmt"
	goast "go/ast"
	goformat "go/format"
	"go/parser"
	"go/token"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"golang.org/x/tools/go/ast/inspector"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// AST node keys. Every node carries its type and byte offsets; inner nodes
// list their children and leaves carry their text. The root also holds the
// parsed source, which stringify returns.
const (
	NodeTypeKey     = "type"
	NodeStartKey    = "start"
	NodeEndKey      = "end"
	NodeChildrenKey = "children"
	NodeTextKey     = "text"
	NodeSourceKey   = "source"
)

var errNoSource = errors.New("ast: root node has no source")

func astNode(typ string, start, end int) *orderedmap.OrderedMap {
	n := orderedmap.New()
	n.Set(NodeTypeKey, typ)
	n.Set(NodeStartKey, int64(start))
	n.Set(NodeEndKey, int64(end))

	return n
}

func appendChild(parent, child *orderedmap.OrderedMap) {
	raw, _ := parent.Get(NodeChildrenKey)
	children, _ := raw.([]any)
	parent.Set(NodeChildrenKey, append(children, child))
}

// astSource returns the source stored on the root node.
func astSource(v any) (string, error) {
	root, ok := Ordered(v).(*orderedmap.OrderedMap)
	if !ok {
		return "", fmt.Errorf("ast: expected a node, got %T", v)
	}

	src, ok := root.Get(NodeSourceKey)
	if !ok {
		return "", errNoSource
	}

	s, ok := src.(string)
	if !ok {
		return "", errNoSource
	}

	return s, nil
}

// GoAST converts ast <-> string<text/x-go>.
func GoAST() *StringCodec {
	return &StringCodec{
		Name:      "go-ast",
		Value:     datatype.New(datatype.TypeAST),
		Text:      datatype.String(format.Go),
		Stringify: EncodeGo,
		Parse:     DecodeGo,
	}
}

// EncodeGo returns the gofmt-formatted source of the root node.
func EncodeGo(v any) (string, error) {
	src, err := astSource(v)
	if err != nil {
		return "", err
	}

	out, err := goformat.Source([]byte(src))
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// DecodeGo parses a Go source file into the generic node tree.
func DecodeGo(src string) (any, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "source.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	offset := func(p token.Pos) int {
		if !p.IsValid() {
			return 0
		}

		return fset.Position(p).Offset
	}

	var (
		root  *orderedmap.OrderedMap
		stack []*orderedmap.OrderedMap
	)

	in := inspector.New([]*goast.File{file})
	in.Nodes(nil, func(n goast.Node, push bool) bool {
		if !push {
			stack = stack[:len(stack)-1]
			return true
		}

		node := astNode(goNodeType(n), offset(n.Pos()), offset(n.End()))

		switch x := n.(type) {
		case *goast.Ident:
			node.Set(NodeTextKey, x.Name)
		case *goast.BasicLit:
			node.Set(NodeTextKey, x.Value)
		case *goast.Comment:
			node.Set(NodeTextKey, x.Text)
		}

		if len(stack) == 0 {
			root = node
		} else {
			appendChild(stack[len(stack)-1], node)
		}

		stack = append(stack, node)

		return true
	})

	root.Set(NodeSourceKey, src)

	return root, nil
}

func goNodeType(n goast.Node) string {
	name := fmt.Sprintf("%T", n)
	return strings.TrimPrefix(name, "*ast.")
}
