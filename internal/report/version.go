package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FilePrefix starts every report file name.
const FilePrefix = "nextjs_code_"

// reportFilePattern matches names produced by FileName for any app.
var reportFilePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(FilePrefix) + `.+_v\d{2,}\.md$`)

// FileName returns "nextjs_code_<app>_v<NN>.md" with NN zero-padded to two
// digits.
func FileName(appName string, version int) string {
	return fmt.Sprintf("%s%s_v%02d.md", FilePrefix, appName, version)
}

// ReportName returns the name used in the report title and file name.
// A bare appName is used as given. When appName is a path ("./web", "web/",
// "/srv/web") the base name of the resolved root is used instead, so the file
// name never contains a separator.
func ReportName(appName, root string) string {
	if !strings.ContainsAny(appName, `/`+string(filepath.Separator)) {
		return appName
	}
	name := filepath.Base(root)
	if name == "." || name == string(filepath.Separator) {
		return "root"
	}
	return name
}

// IsReportFile reports whether name looks like a file written by nextdoc.
func IsReportFile(name string) bool {
	return reportFilePattern.MatchString(name)
}

// NextOutputPath returns the first FileName, counting from version 1, that
// does not exist inside dir. There is no upper bound on the version.
func NextOutputPath(dir, appName string) string {
	for version := 1; ; version++ {
		candidate := filepath.Join(dir, FileName(appName, version))
		if !exists(candidate) {
			return candidate
		}
	}
}

// exists mirrors a plain existence probe: any stat failure counts as absent.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
