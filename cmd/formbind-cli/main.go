package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/bind"
	"github.com/goliatone/go-formbind/pkg/dom"
)

func main() {
	input := flag.String("input", "", "HTML document to bind against (required)")
	dataPath := flag.String("data", "", "values file (JSON or YAML) to populate from")
	attrsPath := flag.String("attrs", "", "attribute directives file (JSON or YAML)")
	output := flag.String("output", "", "output file (stdout if empty)")
	extract := flag.String("extract", "", "comma-separated keys to extract, or 'all' for every control key")
	format := flag.String("format", "json", "extraction output format: json or yaml")
	rawMarkup := flag.Bool("unsafe-markup", false, "insert generic content as raw markup instead of text")
	interactive := flag.Bool("interactive", false, "prompt for every control key, then populate from the answers")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input")
	}
	doc, err := loadDocument(*input)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	switch {
	case *interactive:
		err = runInteractive(doc, *output)
	case *extract != "":
		err = runExtract(doc, *extract, *format, *output)
	case *dataPath != "":
		err = runPopulate(doc, *dataPath, *attrsPath, *rawMarkup, *output)
	default:
		log.Fatal("nothing to do: pass -data, -extract, or -interactive")
	}
	if err != nil {
		if errors.Is(err, errAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func runPopulate(doc *html.Node, dataPath, attrsPath string, rawMarkup bool, output string) error {
	data, err := loadData(dataPath)
	if err != nil {
		return err
	}

	var opts []bind.PopulateOption
	if attrsPath != "" {
		attrs, err := loadAttrs(attrsPath)
		if err != nil {
			return err
		}
		opts = append(opts, bind.Attributes(attrs))
	}
	if rawMarkup {
		opts = append(opts, bind.RawMarkup())
	}

	if err := bind.New().Populate(doc, data, opts...); err != nil {
		return fmt.Errorf("populate: %w", err)
	}
	return writeDocument(doc, output)
}

func runExtract(doc *html.Node, rawKeys, format, output string) error {
	var keys []string
	if strings.TrimSpace(rawKeys) == "all" {
		keys = dom.ControlKeys(doc)
	} else {
		for _, key := range strings.Split(rawKeys, ",") {
			if trimmed := strings.TrimSpace(key); trimmed != "" {
				keys = append(keys, trimmed)
			}
		}
	}

	values, err := bind.New().Values(doc, keys...)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	var payload []byte
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		payload, err = json.MarshalIndent(values, "", "  ")
	case "yaml", "yml":
		payload, err = yaml.Marshal(values)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	return writeOutput(string(payload), output)
}

func runInteractive(doc *html.Node, output string) error {
	data, err := promptForKeys(doc, surveyPrompter{})
	if err != nil {
		return err
	}
	if err := bind.New().Populate(doc, data); err != nil {
		return fmt.Errorf("populate: %w", err)
	}
	return writeDocument(doc, output)
}

func loadDocument(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.ParseDocument(f)
}

// loadData decodes a values file. YAML is a JSON superset, so one decoder
// covers both.
func loadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	data := map[string]any{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return data, nil
}

// loadAttrs decodes attribute directives: null and false remove the
// attribute, true asserts bare presence, anything else sets the stringified
// value.
func loadAttrs(path string) (map[string]dom.Attrs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attrs: %w", err)
	}
	decoded := map[string]map[string]any{}
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode attrs: %w", err)
	}

	out := make(map[string]dom.Attrs, len(decoded))
	for key, directives := range decoded {
		attrs := make(dom.Attrs, len(directives))
		for name, value := range directives {
			attrs[name] = directiveFor(value)
		}
		out[key] = attrs
	}
	return out, nil
}

func directiveFor(value any) dom.Attr {
	switch v := value.(type) {
	case nil:
		return dom.AttrRemove()
	case bool:
		if v {
			return dom.AttrPresent()
		}
		return dom.AttrRemove()
	case string:
		return dom.AttrSet(v)
	default:
		return dom.AttrSet(bind.Stringify(v))
	}
}

func writeDocument(doc *html.Node, output string) error {
	rendered, err := dom.RenderNode(doc)
	if err != nil {
		return err
	}
	return writeOutput(rendered, output)
}

func writeOutput(content, output string) error {
	if output == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("written to %s\n", output)
	return nil
}
