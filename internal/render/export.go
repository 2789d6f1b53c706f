package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler so the namespace serializes as a
// mapping that preserves key order.
func (n Namespace) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range n {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: e.Key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", e.Key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// ExportYAML renders the namespace as a YAML document.
func (n Namespace) ExportYAML() ([]byte, error) {
	data, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal namespace: %w", err)
	}
	return data, nil
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (n Namespace) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range n {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %s: %w", e.Key, err)
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ExportJSON renders the namespace as indented JSON.
func (n Namespace) ExportJSON() ([]byte, error) {
	compact, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indent namespace: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
