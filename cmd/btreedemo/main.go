/*
Command btreedemo inserts a list of integer keys into a B-tree, prints the
resulting tree and looks up some keys.

Usage:

	btreedemo [flags]

Flags:

	-order n      order of the tree (default 3)
	-keys list    comma separated keys to insert
	-get list     comma separated keys to look up
	-dot file     write the tree in Graphviz DOT format to file
	-html file    write the tree as an HTML document to file
	-events       report splits while inserting
	-v            trace at debug level
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/btree"
	"github.com/npillmayer/btree/html"
	"github.com/npillmayer/btree/printer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	order := flag.Int("order", 3, "order of the tree")
	keys := flag.String("keys", "10,20,20,5,15,25,35", "comma separated keys to insert")
	lookups := flag.String("get", "5,100", "comma separated keys to look up")
	dotfile := flag.String("dot", "", "write Graphviz DOT output to file")
	htmlfile := flag.String("html", "", "write HTML output to file")
	events := flag.Bool("events", false, "report splits while inserting")
	verbose := flag.Bool("v", false, "trace at debug level")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	if err := run(*order, *keys, *lookups, *dotfile, *htmlfile, *events); err != nil {
		fmt.Fprintf(os.Stderr, "btreedemo: %v\n", err)
		os.Exit(1)
	}
}

func run(order int, keys, lookups, dotfile, htmlfile string, events bool) error {
	ins, err := parseKeys(keys)
	if err != nil {
		return err
	}
	gets, err := parseKeys(lookups)
	if err != nil {
		return err
	}
	cfg := btree.OrderedConfig[int](order)
	cfg.Events = events
	tree, err := btree.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	defer tree.Close()
	done := make(chan struct{})
	if events {
		ch, err := tree.Watch(context.Background(), 16)
		if err != nil {
			return err
		}
		go func() {
			defer close(done)
			for ev := range ch {
				fmt.Printf("%s at depth %d, median %d, height %d\n", ev.Kind, ev.Depth, ev.Median, ev.Height)
			}
		}()
	} else {
		close(done)
	}
	for _, k := range ins {
		tree.Set(k)
	}
	tree.Close()
	<-done
	if err := printer.Fprint(os.Stdout, tree, printer.OptionsFromTerminal()); err != nil {
		return err
	}
	for _, k := range gets {
		if v, ok := tree.Get(k); ok {
			fmt.Printf("Found %d\n", v)
		} else {
			fmt.Println("Not found")
		}
	}
	if dotfile != "" {
		if err := writeFile(dotfile, func(f *os.File) error { return btree.ToDot(tree, f) }); err != nil {
			return err
		}
	}
	if htmlfile != "" {
		if err := writeFile(htmlfile, func(f *os.File) error { return html.Render(f, tree) }); err != nil {
			return err
		}
	}
	return nil
}

func parseKeys(list string) ([]int, error) {
	var keys []int
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", s, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
