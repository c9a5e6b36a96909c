// Package report renders a Next.js project into a single markdown document
// and writes it next to the sources.
//
// # Generating
//
//	gen := report.NewGenerator()
//	summary, err := gen.Generate("my-app")
//	// summary.OutputPath == "/abs/my-app/nextjs_code_my-app_v01.md"
//
// Generate fails with a user error (exit code 1) when the application path
// does not exist, and with a system error (exit code 2) when the report
// cannot be written. Files that cannot be read or are not valid UTF-8 never
// fail the run; they show up in the document as error notices.
//
// # Document Layout
//
//	# Documentation of the Next.js application my-app
//
//	*Documentation generated on 17/10/2026 at 14:03:09*
//
//
//	## File Structure
//
//
//	#### 📦 package.json
//
//	```json
//	{ ... }
//	```
//
//
//	### 📁 pages
//
//
//	#### 🏠 index.tsx
//	...
//
// Each piece is a block; blocks are joined with a single newline, so the
// blank lines come from the blocks themselves.
//
// # Versioning
//
// Reports are named nextjs_code_<app>_v<NN>.md. Each run picks the lowest
// version whose file does not exist yet, so nothing is ever overwritten.
// Earlier reports are .md files and are embedded by later runs unless
// WithSkipReports(true) is used.
package report
