/*
Package operation implements the named text transformation operations and
their dispatch table.

	+------------+
	|  Dispatch  |
	| (name->fn) |
	+-----+------+
	      |
	+-----+------+
	| Operations |
	| (pure fns) |
	+------------+

🎯 Purpose:
- Maps operation names to pure text-to-text functions
- Validates requested operations against the fixed registry
- Carries per-operation options with documented defaults

⚡ Key Responsibilities:
- Case conversion (upper, lower, title, sentence)
- Whitespace and punctuation cleanup (clean, normalize, remove_punctuation, remove_numbers)
- Line and token reordering (reverse, sort_lines, remove_empty_lines, add_line_numbers)

📝 Design Philosophy:
Operations are stateless and side-effect-free: they never touch the
filesystem and each call is independent, so concurrent dispatch on
different inputs is safe. File handling belongs to the transform package.
*/
package operation
