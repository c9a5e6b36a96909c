// Package output provides console output and exit-code handling for the
// nextdoc CLI.
//
// # Printer
//
// Every command writes through a Printer so that the same code path serves
// humans and scripts:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "✅ Documentation generated: " + path})
//	printer.Error(err)
//	printer.Warn("skipping %s: %v", dir, err)
//
// Human output is styled with lipgloss when the writer is a terminal and is
// plain text otherwise. With --json every result and error is a JSON object.
// Errors are written to the main writer; warnings and status hints go to the
// stderr writer.
//
// # Tables
//
// Printer.Table renders rows with tablewriter, borderless and left aligned.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: bad arguments, missing application directory
//	output.ExitSystemError // 2: report could not be written, other I/O failure
//
// Errors created with NewUserError, NewSystemError and
// NewSystemErrorWithCause carry their code; GetExitCode turns the error
// returned by the command tree into the process exit status.
package output
