// Package diag defines the diagnostic model shared by the tokenizer and the
// fix driver.
//
// Diagnostics never stop a fixer: a file whose tokenization produced errors
// is skipped by the driver and reported, every other file is still processed.
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form (LEX1002).
//   - Message – short human oriented text.
//   - Primary – the source.Span pointing at the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Producers emit through a Reporter; BagReporter aggregates into a Bag which
// supports sorting and deduplication.
package diag
