/*
Package config manages configuration parsing and validation for layoutrc.

	            +-------------+
	            |   Config    |
	            | root, files |
	            |   rules     |
	            +------+------+
	                   |
	   +--------+------+-----+--------+
	   |        |            |        |
	+--+--+  +--+--+     +---+--+  +--+--+
	| YAML|  | JSON|     | HCL  |  | TOML|
	+-----+  +-----+     +------+  +-----+

🎯 Purpose:
- Describes which templates get rewritten and with which rules
- Ships a built-in configuration (Default) so the tool runs with no arguments
- Loads an optional override file, picking the parser by extension

🔄 Flow:
1. Default() or Load(ctx, path)
2. Env overrides (LAYOUTRC_*) and flags are applied by the command
3. Validate() cleans paths, fills the title and rules, and rejects bad patterns

📝 Notes:
File paths are always relative to Root and may not escape it. Paths are
normalized to forward slashes so rule globs behave the same on every platform.
*/
package config
