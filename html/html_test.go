package html

import (
	"bytes"
	"testing"

	"github.com/npillmayer/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func makeTree(t *testing.T, order int, keys ...int) *btree.Tree[int] {
	t.Helper()
	tree, err := btree.New[int](order)
	require.NoError(t, err)
	for _, k := range keys {
		tree.Set(k)
	}
	return tree
}

func classOf(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func collectItems(n *html.Node, out map[string][]*html.Node) {
	if n.Type == html.ElementNode && n.Data == "li" {
		out[classOf(n)] = append(out[classOf(n)], n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectItems(c, out)
	}
}

func TestRenderTree(t *testing.T) {
	tree := makeTree(t, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tree))
	assert.Contains(t, buf.String(), "<title>B-tree of order 3</title>")

	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	items := make(map[string][]*html.Node)
	collectItems(doc, items)
	require.Len(t, items["internal"], 1)
	require.Len(t, items["leaf"], 3)
	assert.Equal(t, "3 6", items["internal"][0].FirstChild.Data)
	for _, leaf := range items["leaf"] {
		// leaf <li> sits in the <ul> of the internal root item
		assert.Equal(t, items["internal"][0], leaf.Parent.Parent)
	}
	assert.Equal(t, "7 8 9", items["leaf"][2].FirstChild.Data)
}

func TestRenderEmpty(t *testing.T) {
	tree := makeTree(t, 5)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tree))
	assert.Contains(t, buf.String(), "empty, order 5")
}

func TestRenderNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render[int](&buf, nil))
}
