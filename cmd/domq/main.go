// domq runs a CSS selector against an HTML document and prints the
// matches, going through the wrapper layer the way library callers
// do.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/domwrap/domwrap/dom"
	"github.com/domwrap/domwrap/dom/markup"
)

var (
	flagFirst   bool
	flagText    bool
	flagDetails bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "domq SELECTOR [FILE]",
		Short: "query an HTML document with a CSS selector",
		Long:  "domq parses an HTML document (a file, or stdin) and prints every node matching the selector.",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  run,

		SilenceUsage: true,
	}
	root.Flags().BoolVar(&flagFirst, "first", false, "print only the first match")
	root.Flags().BoolVar(&flagText, "text", false, "print text content instead of markup")
	root.Flags().BoolVar(&flagDetails, "details", false, "print match diagnostics")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	in := os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	root, err := parseDocument(in)
	if err != nil {
		return err
	}

	w := dom.Wrap(root, nil)
	selector := dom.Selector(args[0])
	local := &dom.Options{QueryDetails: dom.Bool(flagDetails)}

	var res *dom.Result
	if flagDetails {
		res, err = w.Search(local, !flagFirst, args[0])
	} else if flagFirst {
		res, err = w.Get(selector, local)
	} else {
		res, err = w.Find(selector, local)
	}
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("no match for %q", args[0])
	}

	for _, n := range resultNodes(res) {
		if flagText {
			fmt.Println(markup.Text(n))
			continue
		}
		s, err := markup.Render(n)
		if err != nil {
			return err
		}
		fmt.Println(s)
	}
	for i, d := range res.Details {
		fmt.Fprintf(os.Stderr, "member %d: found=%v matches=%d checked=%d\n",
			i, d.Found, len(d.Matches), d.Checked)
	}
	return nil
}

// parseDocument parses a full document and returns its root element.
func parseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c, nil
		}
	}
	return nil, fmt.Errorf("document has no root element")
}

func resultNodes(res *dom.Result) []*html.Node {
	switch {
	case res.Wrapper != nil:
		return res.Wrapper.Nodes()
	case res.Node != nil:
		return []*html.Node{res.Node}
	default:
		return res.Nodes
	}
}
