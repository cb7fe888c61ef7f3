package gh

import (
	"encoding/base64"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input field types declared by workflow_dispatch.
const (
	TypeString      = "string"
	TypeBoolean     = "boolean"
	TypeChoice      = "choice"
	TypeEnvironment = "environment"
)

// InputField is one workflow_dispatch input with its current value.
type InputField struct {
	Name        string
	Description string
	Type        string
	Required    bool
	Default     string
	Options     []string // non-empty only for choice inputs
	Value       string
}

// FetchWorkflowInputs downloads a workflow file (from the given branch, or
// the default branch when branch is empty) and extracts its
// workflow_dispatch inputs. It returns human-readable summary lines plus
// the editable fields, in the order the workflow declares them.
func FetchWorkflowInputs(repo, filename, branch string) ([]string, []InputField, error) {
	apiPath := fmt.Sprintf("repos/%s/contents/.github/workflows/%s", repo, filename)
	if branch != "" {
		apiPath += "?ref=" + branch
	}

	out, err := Run("api", apiPath, "--jq", ".content")
	if err != nil {
		return nil, nil, fmt.Errorf("fetching workflow file: %w", err)
	}

	// gh emits the base64 content with embedded newlines.
	b64 := strings.NewReplacer("\n", "", "\r", "").Replace(out)
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding workflow file: %w", err)
	}

	return ParseWorkflowInputs(raw)
}

// ParseWorkflowInputs parses workflow YAML and extracts the inputs declared
// under on.workflow_dispatch.inputs, preserving declaration order.
func ParseWorkflowInputs(data []byte) ([]string, []InputField, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing workflow YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil, nil
	}

	inputs := mappingValue(mappingValue(mappingValue(doc.Content[0], "on"), "workflow_dispatch"), "inputs")
	if inputs == nil || inputs.Kind != yaml.MappingNode {
		return nil, nil, nil
	}

	var lines []string
	var fields []InputField
	for i := 0; i+1 < len(inputs.Content); i += 2 {
		name := inputs.Content[i].Value
		def := inputs.Content[i+1]

		field := InputField{
			Name:        name,
			Description: scalarValue(mappingValue(def, "description")),
			Type:        scalarValue(mappingValue(def, "type")),
			Required:    scalarValue(mappingValue(def, "required")) == "true",
			Default:     scalarValue(mappingValue(def, "default")),
		}
		if field.Type == "" {
			field.Type = TypeString
		}
		if opts := mappingValue(def, "options"); opts != nil && opts.Kind == yaml.SequenceNode {
			for _, o := range opts.Content {
				field.Options = append(field.Options, o.Value)
			}
		}
		field.Value = field.Default

		lines = append(lines, describeField(field))
		fields = append(fields, field)
	}
	return lines, fields, nil
}

func describeField(f InputField) string {
	var b strings.Builder
	b.WriteString(f.Name + ":")
	if f.Description != "" {
		b.WriteString(" " + f.Description)
	}
	fmt.Fprintf(&b, " [type: %s]", f.Type)
	fmt.Fprintf(&b, " [required: %t]", f.Required)
	if f.Default != "" {
		fmt.Fprintf(&b, " [default: %s]", f.Default)
	}
	if len(f.Options) > 0 {
		fmt.Fprintf(&b, " [options: %s]", strings.Join(f.Options, ", "))
	}
	return b.String()
}

// mappingValue returns the value node for a key in a YAML mapping node.
// A nil node or non-mapping node yields nil, so lookups chain safely.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func scalarValue(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}
