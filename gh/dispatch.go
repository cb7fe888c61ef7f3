package gh

import "strings"

// NameValue is one dispatched workflow input.
type NameValue struct {
	Name  string
	Value string
}

// DispatchArgs builds the gh argument vector for a workflow dispatch.
// Fields with empty values are skipped. The same projection backs the
// confirmation preview and the actual dispatch, so what the user
// confirms is exactly what runs.
func DispatchArgs(repo, branch, filename string, inputs []NameValue) []string {
	args := []string{
		"workflow", "run", filename,
		"--repo", repo,
		"--ref", branch,
	}
	for _, in := range inputs {
		if in.Value == "" {
			continue
		}
		args = append(args, "-f", in.Name+"="+in.Value)
	}
	return args
}

// Preview renders an argument vector as the shell command it represents.
func Preview(args []string) string {
	return "gh " + strings.Join(args, " ")
}

// FieldValues projects input fields onto dispatchable name/value pairs.
func FieldValues(fields []InputField) []NameValue {
	pairs := make([]NameValue, len(fields))
	for i, f := range fields {
		pairs[i] = NameValue{Name: f.Name, Value: f.Value}
	}
	return pairs
}

// Dispatch triggers a workflow run and returns the command preview that
// was executed.
func Dispatch(repo, branch, filename string, inputs []NameValue) (string, error) {
	args := DispatchArgs(repo, branch, filename, inputs)
	if _, err := Run(args...); err != nil {
		return "", err
	}
	return Preview(args), nil
}
