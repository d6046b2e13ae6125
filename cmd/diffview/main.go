package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/mounting"
	"github.com/wippyai/render-core/shadow"
	"github.com/wippyai/render-core/wire"
)

func main() {
	var (
		oldFile     = flag.String("old", "", "Path to the old snapshot frame")
		newFile     = flag.String("new", "", "Path to the new snapshot frame")
		outFile     = flag.String("out", "", "Write the mutation stream as a wire frame to this path")
		demo        = flag.Bool("demo", false, "Diff a built-in demo scenario instead of snapshot files")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	var oldRoot, newRoot *shadow.Node
	var err error

	switch {
	case *demo:
		oldRoot, newRoot = demoTrees()
	case *oldFile != "" && *newFile != "":
		oldRoot, newRoot, err = loadSnapshots(*oldFile, *newFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Usage: diffview -old <old.frame> -new <new.frame> [-out <mutations.frame>]")
		fmt.Fprintln(os.Stderr, "       diffview -demo")
		fmt.Fprintln(os.Stderr, "       diffview -demo -i  (interactive mode)")
		os.Exit(1)
	}

	mutations := mounting.CalculateMutations(oldRoot, newRoot)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(oldRoot, newRoot, mutations); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%d mutation(s):\n", len(mutations))
	for i, m := range mutations {
		fmt.Printf("  %3d. %s\n", i, m)
	}

	if *outFile != "" {
		data, err := wire.EncodeMutations(mutations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outFile, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d bytes to %s\n", len(data), *outFile)
	}
}

func loadSnapshots(oldPath, newPath string) (*shadow.Node, *shadow.Node, error) {
	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, nil, err
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return nil, nil, err
	}

	oldRoot, err := wire.DecodeSnapshot(oldData)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", oldPath, err)
	}
	newRoot, err := wire.DecodeSnapshot(newData)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", newPath, err)
	}

	// Independent decodes mint independent families; align them so the
	// trees diff as two generations of one surface.
	return oldRoot, wire.RebindFamilies(oldRoot, newRoot), nil
}

// demoTrees builds the two generations of a small gallery surface: one
// item updates its props, one disappears, one is newly inserted.
func demoTrees() (*shadow.Node, *shadow.Node) {
	families := map[rendercore.Tag]*shadow.Family{}
	family := func(tag rendercore.Tag, component string) *shadow.Family {
		if f, ok := families[tag]; ok {
			return f
		}
		f := shadow.NewFamily(tag, 1, component)
		families[tag] = f
		return f
	}

	item := func(tag rendercore.Tag, title string, children ...*shadow.Node) *shadow.Node {
		return shadow.NewNode(shadow.NodeSpec{
			Family:   family(tag, "GalleryItem"),
			Props:    &wire.SnapshotProps{Values: map[string]any{"title": title}},
			Children: children,
			Traits:   shadow.TraitFormsView | shadow.TraitFormsStackingContext,
		})
	}
	root := func(children ...*shadow.Node) *shadow.Node {
		return shadow.NewNode(shadow.NodeSpec{
			Family:   family(1, "Gallery"),
			Children: children,
			Traits:   shadow.TraitFormsView | shadow.TraitFormsStackingContext,
		})
	}

	oldRoot := root(
		item(2, "Sunset", item(20, "Caption")),
		item(3, "Harbor"),
		item(4, "Forest"),
	)
	newRoot := root(
		item(2, "Sunset", item(20, "Caption")),
		item(4, "Forest (edited)"),
		item(5, "Glacier"),
	)
	// Every item call mints a fresh props reference; rebinding lets items
	// whose props values are unchanged keep the old reference.
	return oldRoot, wire.RebindFamilies(oldRoot, newRoot)
}

// renderTree formats a tree for display.
func renderTree(node *shadow.Node, indent int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(fmt.Sprintf("%s #%d", node.ComponentName(), node.Tag()))
	if props, ok := node.Props().(*wire.SnapshotProps); ok {
		if title, ok := props.Values["title"]; ok {
			b.WriteString(fmt.Sprintf(" %q", title))
		}
	}
	b.WriteByte('\n')
	for _, child := range node.Children() {
		b.WriteString(renderTree(child, indent+1))
	}
	return b.String()
}
