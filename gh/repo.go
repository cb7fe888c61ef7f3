package gh

import (
	"encoding/json"
	"fmt"
	"strings"
)

const repoDetailsQuery = `query($owner: String!, $name: String!) {
  repository(owner: $owner, name: $name) {
    refs(refPrefix: "refs/heads/", first: 100) {
      nodes { name }
    }
    object(expression: "HEAD:.github/workflows/") {
      ... on Tree {
        entries { name }
      }
    }
  }
}`

const branchWorkflowsQuery = `query($owner: String!, $name: String!, $expr: String!) {
  repository(owner: $owner, name: $name) {
    object(expression: $expr) {
      ... on Tree {
        entries { name }
      }
    }
  }
}`

type graphqlResponse struct {
	Data struct {
		Repository *struct {
			Refs struct {
				Nodes []struct {
					Name string `json:"name"`
				} `json:"nodes"`
			} `json:"refs"`
			Object struct {
				Entries []struct {
					Name string `json:"name"`
				} `json:"entries"`
			} `json:"object"`
		} `json:"repository"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// SplitName splits an "owner/name" identifier into its two halves.
func SplitName(full string) (owner, name string, err error) {
	parts := strings.SplitN(full, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format %q, expected owner/name", full)
	}
	return parts[0], parts[1], nil
}

// FetchRepoDetails returns a repository's branch names and the workflow
// file names found under .github/workflows/ on the default branch.
func FetchRepoDetails(owner, name string) (branches, workflows []string, err error) {
	out, err := Run("api", "graphql",
		"-f", "query="+repoDetailsQuery,
		"-F", "owner="+owner,
		"-F", "name="+name,
	)
	if err != nil {
		return nil, nil, err
	}

	var resp graphqlResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return nil, nil, fmt.Errorf("parsing gh response: %w", err)
	}
	if resp.Data.Repository == nil {
		return nil, nil, fmt.Errorf("GitHub API error: %s", graphqlErrors(resp))
	}

	for _, n := range resp.Data.Repository.Refs.Nodes {
		branches = append(branches, n.Name)
	}
	for _, e := range resp.Data.Repository.Object.Entries {
		workflows = append(workflows, e.Name)
	}
	return branches, workflows, nil
}

// FetchBranchWorkflows returns the workflow file names present under
// .github/workflows/ on a specific branch.
func FetchBranchWorkflows(owner, name, branch string) ([]string, error) {
	out, err := Run("api", "graphql",
		"-f", "query="+branchWorkflowsQuery,
		"-F", "owner="+owner,
		"-F", "name="+name,
		"-F", "expr="+branch+":.github/workflows/",
	)
	if err != nil {
		return nil, err
	}

	var resp graphqlResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return nil, fmt.Errorf("parsing gh response: %w", err)
	}
	if resp.Data.Repository == nil {
		return nil, fmt.Errorf("GitHub API error: %s", graphqlErrors(resp))
	}

	var workflows []string
	for _, e := range resp.Data.Repository.Object.Entries {
		workflows = append(workflows, e.Name)
	}
	return workflows, nil
}

func graphqlErrors(resp graphqlResponse) string {
	if len(resp.Errors) == 0 {
		return "repository not found"
	}
	msgs := make([]string, len(resp.Errors))
	for i, e := range resp.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}
