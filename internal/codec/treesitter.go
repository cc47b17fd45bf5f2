package codec

import (
	"context"
	"fmt"

	"github.com/keboola/go-utils/pkg/orderedmap"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// JavaScriptAST converts ast <-> string<text/javascript> using tree-sitter.
func JavaScriptAST() *StringCodec {
	return sitterCodec("javascript-ast", format.JavaScript, javascript.GetLanguage())
}

// TypeScriptAST converts ast <-> string<text/typescript> using tree-sitter.
func TypeScriptAST() *StringCodec {
	return sitterCodec("typescript-ast", format.TypeScript, typescript.GetLanguage())
}

func sitterCodec(name, textFormat string, lang *sitter.Language) *StringCodec {
	return &StringCodec{
		Name:      name,
		Value:     datatype.New(datatype.TypeAST),
		Text:      datatype.String(textFormat),
		Stringify: astSource,
		Parse: func(src string) (any, error) {
			return decodeSitter(lang, src)
		},
	}
}

// decodeSitter builds the generic node tree from named tree-sitter nodes.
// Syntax errors are reported at the first error node.
func decodeSitter(lang *sitter.Language, src string) (any, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	content := []byte(src)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		if bad := firstError(rootNode); bad != nil {
			p := bad.StartPoint()
			return nil, fmt.Errorf("syntax error at %d:%d near %q", p.Row+1, p.Column+1, bad.Content(content))
		}

		return nil, fmt.Errorf("syntax error")
	}

	root := fromSitterNode(rootNode, content)
	root.Set(NodeSourceKey, src)

	return root, nil
}

func fromSitterNode(n *sitter.Node, content []byte) *orderedmap.OrderedMap {
	node := astNode(n.Type(), int(n.StartByte()), int(n.EndByte()))

	count := int(n.NamedChildCount())
	if count == 0 {
		node.Set(NodeTextKey, n.Content(content))
		return node
	}

	for i := 0; i < count; i++ {
		appendChild(node, fromSitterNode(n.NamedChild(i), content))
	}

	return node
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstError(n.Child(i)); bad != nil {
			return bad
		}
	}

	return nil
}
