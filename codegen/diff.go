package codegen

import "github.com/sergi/go-diff/diffmatchpatch"

// unifiedDiff renders a readable diff between the file on disk and the
// freshly rendered output, for -check mode.
func unifiedDiff(have, want string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(have, want, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
