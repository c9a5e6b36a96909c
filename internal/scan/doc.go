// Package scan walks a project tree and reports the directories and source
// files that belong in a code report.
//
// # Rules
//
// The walk is top-down. For every visited directory the walker emits:
//
//  1. a directory event (skipped for the root itself),
//  2. one file event per qualifying file, in ascending name order,
//  3. the same sequence for each subdirectory, in ascending name order.
//
// A subdirectory is pruned, together with everything below it, when its name
// starts with "." or is one of the excluded names (node_modules, .next,
// public, build, dist). A file qualifies when its extension is a key of the
// [Registry]; all other files are skipped without a trace.
//
// # Usage
//
//	opts := scan.DefaultOptions()
//	err := scan.Walk(root, opts, func(ev scan.Event) error {
//		switch ev.Kind {
//		case scan.EventDir:
//			fmt.Println("dir", ev.RelDir)
//		case scan.EventFile:
//			fmt.Println("file", ev.Name, ev.Language)
//		}
//		return nil
//	})
//
// Directories that cannot be listed are skipped; set [Options.OnDirError]
// to observe them.
package scan
