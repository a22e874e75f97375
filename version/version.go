package version

import "fmt"

// Set at build time with -ldflags "-X raff/version.GitCommit=...".
var GitCommit string
var GitTag string
var UserAgent string

func init() {
	UserAgent = fmt.Sprintf("raff/%s+%s", GitTag, GitCommit)
}
