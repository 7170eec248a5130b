package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes an item with case-insensitive field names, so catalogs
// written as "Name"/"Prerequisites" and "name"/"prerequisites" both load.
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: item must be a mapping", value.Line)
	}

	var item Item
	for idx := 0; idx+1 < len(value.Content); idx += 2 {
		key, field := value.Content[idx], value.Content[idx+1]
		switch strings.ToLower(key.Value) {
		case "name":
			if err := field.Decode(&item.Name); err != nil {
				return err
			}
		case "color":
			if err := field.Decode(&item.Color); err != nil {
				return err
			}
		case "cost":
			if isNull(field) {
				continue
			}
			var cost int
			if err := field.Decode(&cost); err != nil {
				return err
			}
			item.Cost = &cost
		case "prerequisites":
			if err := field.Decode(&item.Prerequisites); err != nil {
				return err
			}
		}
	}

	*i = item
	return nil
}

// UnmarshalYAML accepts a bare atom string or a list of clauses. Each clause is
// either an atom string (one option with one atom) or a list of options, and
// each option is an atom string or a list of atom strings.
func (f *Formula) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)
	switch value.Kind {
	case yaml.ScalarNode:
		if isNull(value) {
			*f = nil
			return nil
		}
		atom, err := decodeAtom(value)
		if err != nil {
			return err
		}
		*f = Formula{{{atom}}}
		return nil
	case yaml.SequenceNode:
		formula := make(Formula, 0, len(value.Content))
		for _, node := range value.Content {
			clause, err := decodeClause(node)
			if err != nil {
				return err
			}
			formula = append(formula, clause)
		}
		*f = formula
		return nil
	default:
		return fmt.Errorf("line %d: prerequisites must be a string or a list", value.Line)
	}
}

func decodeClause(node *yaml.Node) (Clause, error) {
	node = resolve(node)
	switch node.Kind {
	case yaml.ScalarNode:
		atom, err := decodeAtom(node)
		if err != nil {
			return nil, err
		}
		return Clause{{atom}}, nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("line %d: clause has no options", node.Line)
		}
		clause := make(Clause, 0, len(node.Content))
		for _, child := range node.Content {
			option, err := decodeOption(child)
			if err != nil {
				return nil, err
			}
			clause = append(clause, option)
		}
		return clause, nil
	default:
		return nil, fmt.Errorf("line %d: clause must be a string or a list", node.Line)
	}
}

func decodeOption(node *yaml.Node) (Option, error) {
	node = resolve(node)
	switch node.Kind {
	case yaml.ScalarNode:
		atom, err := decodeAtom(node)
		if err != nil {
			return nil, err
		}
		return Option{atom}, nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("line %d: option has no atoms", node.Line)
		}
		option := make(Option, 0, len(node.Content))
		for _, child := range node.Content {
			child = resolve(child)
			if child.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: atom must be a string", child.Line)
			}
			atom, err := decodeAtom(child)
			if err != nil {
				return nil, err
			}
			option = append(option, atom)
		}
		return option, nil
	default:
		return nil, fmt.Errorf("line %d: option must be a string or a list", node.Line)
	}
}

func decodeAtom(node *yaml.Node) (Atom, error) {
	if node.ShortTag() != "!!str" {
		return Atom{}, fmt.Errorf("line %d: atom must be a string, got %s", node.Line, node.ShortTag())
	}
	atom := ParseAtom(node.Value)
	if strings.TrimSpace(atom.Name) == "" {
		return Atom{}, fmt.Errorf("line %d: atom %q has no item name", node.Line, node.Value)
	}
	return atom, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
