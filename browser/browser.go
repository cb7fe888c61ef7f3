// Package browser opens URLs in the user's default web browser.
package browser

import (
	"os/exec"
	"runtime"
	"strconv"
)

// Open launches the platform opener for a URL. It does not wait for the
// browser; a failure to start is the only error reported.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// RepoURL returns the GitHub page for an "owner/name" repository.
func RepoURL(repo string) string {
	return "https://github.com/" + repo
}

// RunURL returns the GitHub Actions page for a workflow run.
func RunURL(repo string, runID uint64) string {
	return RepoURL(repo) + "/actions/runs/" + strconv.FormatUint(runID, 10)
}
