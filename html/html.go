/*
Package html renders B-trees as HTML documents, for debugging in a browser.

Nodes are rendered as nested unordered lists, following the pre-order
traversal of the tree. List items carry a class of either "internal" or
"leaf", which lets a style sheet tell them apart.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/btree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes an HTML document for tree to w.
func Render[K any](w io.Writer, tree *btree.Tree[K]) error {
	if tree == nil {
		return fmt.Errorf("html: nil tree")
	}
	return html.Render(w, Document(tree))
}

// Document creates the HTML node tree for tree, with a document node as its root.
func Document[K any](tree *btree.Tree[K]) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, "")
	doc.AppendChild(root)
	head := element(atom.Head, "")
	root.AppendChild(head)
	title := element(atom.Title, "")
	title.AppendChild(text(fmt.Sprintf("B-tree of order %d", tree.Order())))
	head.AppendChild(title)
	body := element(atom.Body, "")
	root.AppendChild(body)
	if tree.IsEmpty() {
		p := element(atom.P, "empty")
		p.AppendChild(text(fmt.Sprintf("empty, order %d", tree.Order())))
		body.AppendChild(p)
		return doc
	}
	top := element(atom.Ul, "btree")
	body.AppendChild(top)
	lists := []*html.Node{top} // lists[d] receives the nodes of depth d
	for info := range tree.Nodes() {
		class := "internal"
		if info.Leaf {
			class = "leaf"
		}
		li := element(atom.Li, class)
		li.AppendChild(text(keyString(info.Keys)))
		lists[info.Depth].AppendChild(li)
		lists = lists[:info.Depth+1]
		if !info.Leaf {
			ul := element(atom.Ul, "")
			li.AppendChild(ul)
			lists = append(lists, ul)
		}
	}
	return doc
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func keyString[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, " ")
}
