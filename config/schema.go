package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/kbukum/prelude/errors"
)

// Schema returns the JSON Schema of the runner config file. Property names
// follow the yaml tags, and no property is required since every one has a
// default.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	s := r.Reflect(&RunnerConfig{})
	s.Title = "aoc runner configuration"
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Internal(err)
	}
	return out, nil
}
