// Package batch decodes many keypad inputs concurrently.
//
// Inputs come from a Reader (plain lines or JSON Lines records) and are
// decoded by a Runner over a bounded worker pool. Results are returned in
// input order. A failing item never aborts the batch: its Result carries
// the error and the output "ERROR".
//
//	items, err := batch.ReadAll(batch.NewLineReader("stdin", os.Stdin))
//	results, err := (&batch.Runner{Workers: 4}).Run(ctx, items)
package batch
