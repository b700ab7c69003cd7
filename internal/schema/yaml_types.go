package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	errVariantShape = errors.New("variant must be \"Name: type\" or a mapping with name and type")
	errImportShape  = errors.New("import must be a path or a mapping with path and alias")
)

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// UnmarshalYAML accepts a bare import path or {path, alias}.
func (i *Import) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*i = Import{Path: node.Value}

		return nil

	case yaml.MappingNode:
		type plain Import

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*i = Import(p)

		return nil

	default:
		return fmt.Errorf("line %d: %w", node.Line, errImportShape)
	}
}

// MarshalYAML writes the bare path when there is no alias.
func (i Import) MarshalYAML() (any, error) {
	if i.Alias == "" {
		return i.Path, nil
	}

	type plain Import

	return plain(i), nil
}

// UnmarshalYAML accepts either the shorthand single-entry mapping
// "Name: type" or the long form {name, type, codec, view}.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w", node.Line, errVariantShape)
	}

	if hasKey(node, "name") {
		type plain Variant

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*v = Variant(p)

		return nil
	}

	if len(node.Content) != 2 {
		return fmt.Errorf("line %d: %w", node.Line, errVariantShape)
	}

	key, val := node.Content[0], node.Content[1]
	if val.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: variant %q: type must be a string", val.Line, key.Value)
	}

	*v = Variant{Name: key.Value, Type: val.Value}

	return nil
}

// MarshalYAML writes the shorthand form whenever no codec or view is set.
func (v Variant) MarshalYAML() (any, error) {
	if v.IsShorthand() {
		return &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: v.Name},
				{Kind: yaml.ScalarNode, Value: v.Type},
			},
		}, nil
	}

	type plain Variant

	return plain(v), nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}
