/*
Package status owns the filesystem side of a rewrite and the vocabulary used
to report it.

	+-------------+        +-------------+
	|   Manager   |        |   Summary   |
	| (read/write)|        | (outcomes)  |
	+-------------+        +-------------+

🎯 Purpose:
- Resolves listed paths against the configured root
- Reads files and replaces them through a temp file and rename
- Classifies each file as updated, unchanged, not found or error
- Formats the console lines for each classification

📝 Line formats:

	============================================================
	[OK] Updated: <location>
	[SKIP] No change: <location>
	! File not found: <location>
	[ERROR] Error updating <location>: <diagnostic>
	Summary: <N> files updated

Only OutcomeUpdated contributes to the summary count.
*/
package status
