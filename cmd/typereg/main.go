package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/typereg/config"
	"github.com/sghaida/typereg/di"
	"github.com/sghaida/typereg/examples"
)

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("typereg", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a .yaml/.yml/.json container config")
	envPath := flags.String("env", "", "dotenv file loaded before reading TYPEREG_* variables")
	format := flags.String("format", "yaml", "output format: yaml or json")
	outPath := flags.String("out", "", "write the effective config to this file instead of stdout")
	check := flags.Bool("check", false, "build a container and resolve the demo domain")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *configPath != "" && *envPath != "" {
		_, _ = fmt.Fprintln(stderr, "usage: typereg [-config <file> | -env <file>] [-format yaml|json] [-out <file>] [-check]")
		return 2
	}

	cfg, err := load(*configPath, *envPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "typereg:", err)
		return 1
	}

	data, err := encode(cfg, *format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "typereg:", err)
		return 2
	}

	if *check {
		if err := probe(cfg, stdout, stderr); err != nil {
			_, _ = fmt.Fprintln(stderr, "typereg: check failed:", err)
			return 1
		}
	}

	if strings.TrimSpace(*outPath) == "" {
		if _, err := stdout.Write(data); err != nil {
			return 1
		}
		return 0
	}
	if err := writeFileAtomic(filepath.Clean(*outPath), data, 0o644); err != nil {
		_, _ = fmt.Fprintln(stderr, "typereg: write output:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func load(configPath, envPath string) (config.Config, error) {
	switch {
	case configPath != "":
		return config.FromFile(configPath)
	case envPath != "":
		return config.LoadFromEnv(envPath)
	default:
		return config.LoadFromEnv()
	}
}

func encode(cfg config.Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// probe builds a container from cfg and resolves every grocery store in it.
// Container logs go to logs; the summary goes to out.
func probe(cfg config.Config, out, logs io.Writer) error {
	c, err := cfg.NewContainer(logs)
	if err != nil {
		return err
	}
	examples.Register(c)

	if _, err := di.Resolve[examples.GroceryStore](c); err != nil {
		return err
	}
	kinds := di.Specializations[examples.GroceryStore, examples.StoreType](c)
	stores, err := di.ResolveAllSpecialized[examples.GroceryStore, examples.StoreType](c)
	if err != nil {
		return err
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	_, err = fmt.Fprintf(out, "# container %s (%s): %d entries, %d stores [%s]\n",
		c.Name(), c.ID(), c.Len(), len(stores), strings.Join(names, " "))
	return err
}
