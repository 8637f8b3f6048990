package blueprint

import (
	"fmt"
	"regexp"
)

// Blueprint URLs point into the repository tree, for example
// https://github.com/acme/infra/blob/main/blueprints/web.yaml. The branch is
// the segment between blob/ and /blueprints.
var branchPattern = regexp.MustCompile(`blob/(.+)/blueprints`)

// BranchNotFoundError reports a blueprint URL that does not carry a branch
// segment.
type BranchNotFoundError struct {
	URL string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("blueprint: no branch segment in url %q", e.URL)
}

// Branch extracts the branch token from a blueprint URL. URLs without the
// expected shape return a *BranchNotFoundError.
func Branch(url string) (string, error) {
	match := branchPattern.FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		return "", &BranchNotFoundError{URL: url}
	}
	return match[1], nil
}
