package gh

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	runLookupAttempts = 5
	runLookupDelay    = 2 * time.Second
	maxLogLines       = 200
)

// sleep is swapped out in tests so retry timing is observable.
var sleep = time.Sleep

// FindLatestRunID returns the most recent run id for a workflow. A run
// dispatched moments ago may not be listed yet, so the lookup polls a
// few times before giving up.
func FindLatestRunID(repo, filename string) (uint64, error) {
	for attempt := 0; attempt < runLookupAttempts; attempt++ {
		if attempt > 0 {
			sleep(runLookupDelay)
		}

		out, err := Run("run", "list",
			"--repo", repo,
			"--workflow", filename,
			"--limit", "1",
			"--json", "databaseId,status,event",
		)
		if err != nil {
			continue
		}

		id, err := parseRunList(out)
		if err != nil {
			return 0, err
		}
		if id != 0 {
			return id, nil
		}
	}
	return 0, errors.New("could not find workflow run after dispatch; try pressing 'l' again in a few seconds")
}

func parseRunList(out string) (uint64, error) {
	var runs []struct {
		DatabaseID uint64 `json:"databaseId"`
	}
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		return 0, fmt.Errorf("parsing run list: %w", err)
	}
	if len(runs) == 0 {
		return 0, nil
	}
	return runs[0].DatabaseID, nil
}

// GetRunLogs fetches a run's status, conclusion, and the last maxLines
// lines of its logs; maxLines <= 0 applies the default cap.
func GetRunLogs(repo string, runID uint64, maxLines int) (status, conclusion, logs string, err error) {
	if maxLines <= 0 {
		maxLines = maxLogLines
	}
	id := strconv.FormatUint(runID, 10)

	status, conclusion = "unknown", "pending"
	if out, err := Run("run", "view", id, "--repo", repo, "--json", "status,conclusion"); err == nil {
		var info struct {
			Status     string `json:"status"`
			Conclusion string `json:"conclusion"`
		}
		if json.Unmarshal([]byte(out), &info) == nil {
			if info.Status != "" {
				status = info.Status
			}
			if info.Conclusion != "" {
				conclusion = info.Conclusion
			}
		}
	}

	out, err := Run("run", "view", id, "--repo", repo, "--log")
	if err != nil {
		return status, conclusion, fmt.Sprintf("(logs not yet available: %v)", err), nil
	}
	return status, conclusion, tailLines(out, maxLines), nil
}

func tailLines(text string, n int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
