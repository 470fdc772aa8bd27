package cli

import (
	"fmt"
	"io"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/codyps/microtime/lib/config"
)

type field struct {
	key   string
	value interface{}
}

// render writes fields in order, either as "key: value" lines or as a YAML
// mapping.
func render(w io.Writer, format string, fields ...field) error {
	if format != config.OutputYAML {
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "%s: %v\n", f.key, f.value); err != nil {
				return err
			}
		}
		return nil
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		var v yaml.Node
		if err := v.Encode(f.value); err != nil {
			return oops.Wrapf(err, "encoding %s", f.key)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.key},
			&v,
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return oops.Wrapf(err, "writing yaml")
	}
	return enc.Close()
}
