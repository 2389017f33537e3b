package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/calumari/aothost"
)

func main() {
	var base string
	var genDir string
	var resolve string
	var from string
	var moduleOf string
	var containing string
	var metadata string
	var resource string
	var debug bool
	flag.StringVar(&base, "base", "", "Source root directory (required)")
	flag.StringVar(&genDir, "gendir", "", "Generated-output root directory (defaults to -base)")
	flag.StringVar(&resolve, "resolve", "", "Import specifier to resolve to a file path")
	flag.StringVar(&from, "from", "", "File containing the import being resolved")
	flag.StringVar(&moduleOf, "module-of", "", "File path to translate back into an import specifier")
	flag.StringVar(&containing, "containing", "", "File the translated specifier will be imported from")
	flag.StringVar(&metadata, "metadata", "", "Module path to print sidecar metadata for")
	flag.StringVar(&resource, "resource", "", "Resource path to print the content of")
	flag.BoolVar(&debug, "debug", false, "Log resolution steps")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAothost inspects module resolution for a project with a generated-output tree.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -base=/proj/src -resolve=rxjs/Observable -from=/proj/src/app/main.ts\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -base=/proj/src -gendir=/proj/src/gen -module-of=/proj/src/app/app.ts -containing=/proj/src/app/app.ngfactory.ts\n", os.Args[0])
	}
	flag.Parse()

	if base == "" {
		fmt.Fprintf(os.Stderr, "Error: -base is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if genDir == "" {
		genDir = base
	}
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "aothost: %v\n", err)
			os.Exit(1)
		}
		aothost.SetLogger(l)
	}

	host, err := aothost.New(aothost.Config{BasePath: base, GenDir: genDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "aothost: %v\n", err)
		os.Exit(1)
	}
	if err := run(host, resolve, from, moduleOf, containing, metadata, resource); err != nil {
		fmt.Fprintf(os.Stderr, "aothost: %v\n", err)
		os.Exit(1)
	}
}

func run(host *aothost.Host, resolve, from, moduleOf, containing, metadata, resource string) error {
	ran := false
	if resolve != "" {
		resolved, err := host.ResolveModule(resolve, from)
		if err != nil {
			return err
		}
		if resolved == "" {
			return fmt.Errorf("no module found for %q", resolve)
		}
		fmt.Println(resolved)
		ran = true
	}
	if moduleOf != "" {
		if containing == "" {
			return fmt.Errorf("-module-of requires -containing")
		}
		fmt.Println(host.FileNameToModuleName(moduleOf, containing))
		ran = true
	}
	if metadata != "" {
		m, err := host.MetadataFor(metadata)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("no metadata for %q", metadata)
		}
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		ran = true
	}
	if resource != "" {
		content, err := host.LoadResource(context.Background(), resource)
		if err != nil {
			return err
		}
		fmt.Print(content)
		ran = true
	}
	if !ran {
		return fmt.Errorf("nothing to do: pass -resolve, -module-of, -metadata or -resource")
	}
	return nil
}
