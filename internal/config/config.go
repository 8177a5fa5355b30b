// Package config loads HCL batch files for the regexdfa CLI. A batch
// file is zero or more conversion blocks:
//
//	conversion "keyword" {
//	  regex    = "(cc|a)c*"
//	  alphabet = "abcd"
//	}
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Conversion is one regex-to-DFA job.
type Conversion struct {
	Name     string `hcl:"name,label"`
	Regex    string `hcl:"regex"`
	Alphabet string `hcl:"alphabet"`
}

// File is a decoded batch file.
type File struct {
	Conversions []*Conversion `hcl:"conversion,block"`
}

// Load reads and decodes the batch file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load batch file: %w", err)
	}
	return Parse(path, src)
}

// Parse decodes batch file source. The filename selects the HCL syntax
// (.hcl native, .json) and labels diagnostics.
func Parse(filename string, src []byte) (*File, error) {
	var f File
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return &f, nil
}

func (f *File) validate() error {
	seen := make(map[string]struct{}, len(f.Conversions))
	for _, c := range f.Conversions {
		if c.Name == "" {
			return fmt.Errorf("conversion block with empty label")
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate conversion %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
