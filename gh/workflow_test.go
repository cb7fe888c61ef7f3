package gh

import (
	"reflect"
	"strings"
	"testing"
)

const sampleWorkflow = `
name: Deploy
on:
  push:
    branches: [main]
  workflow_dispatch:
    inputs:
      environment:
        description: Target environment
        type: choice
        required: true
        default: staging
        options:
          - dev
          - staging
          - prod
      version:
        description: Version tag
        type: string
      dry_run:
        type: boolean
        default: "false"
jobs:
  deploy:
    runs-on: ubuntu-latest
`

func TestParseWorkflowInputs(t *testing.T) {
	lines, fields, err := ParseWorkflowInputs([]byte(sampleWorkflow))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(fields) != 3 || len(lines) != 3 {
		t.Fatalf("got %d fields, %d lines, want 3 each", len(fields), len(lines))
	}

	// Declaration order must survive parsing.
	order := []string{"environment", "version", "dry_run"}
	for i, name := range order {
		if fields[i].Name != name {
			t.Fatalf("field %d = %q, want %q", i, fields[i].Name, name)
		}
	}

	env := fields[0]
	if env.Type != TypeChoice || !env.Required || env.Default != "staging" {
		t.Fatalf("environment field = %+v", env)
	}
	if want := []string{"dev", "staging", "prod"}; !reflect.DeepEqual(env.Options, want) {
		t.Fatalf("options = %v, want %v", env.Options, want)
	}
	if env.Value != "staging" {
		t.Fatalf("initial value = %q, want the default", env.Value)
	}

	if fields[1].Type != TypeString || fields[1].Required {
		t.Fatalf("version field = %+v", fields[1])
	}
	if fields[2].Type != TypeBoolean || fields[2].Value != "false" {
		t.Fatalf("dry_run field = %+v", fields[2])
	}

	if !strings.Contains(lines[0], "Target environment") || !strings.Contains(lines[0], "[options: dev, staging, prod]") {
		t.Fatalf("line = %q", lines[0])
	}
}

func TestParseWorkflowWithoutDispatchInputs(t *testing.T) {
	yamls := []string{
		"name: CI\non:\n  push:\n    branches: [main]\n",
		"name: CI\non:\n  workflow_dispatch:\njobs: {}\n",
		"",
	}
	for _, src := range yamls {
		lines, fields, err := ParseWorkflowInputs([]byte(src))
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if len(lines) != 0 || len(fields) != 0 {
			t.Fatalf("parse %q: expected no inputs, got %v", src, fields)
		}
	}
}

func TestParseWorkflowInvalidYAML(t *testing.T) {
	if _, _, err := ParseWorkflowInputs([]byte("on: [unclosed")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestUntypedInputDefaultsToString(t *testing.T) {
	src := "on:\n  workflow_dispatch:\n    inputs:\n      note:\n        description: free text\n"
	_, fields, err := ParseWorkflowInputs([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(fields) != 1 || fields[0].Type != TypeString {
		t.Fatalf("fields = %+v", fields)
	}
}
