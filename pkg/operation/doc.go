/*
Package operation implements the template rewrite.

	+-------------+
	|  Operation  |
	| (rewrite /  |
	|    plan)    |
	+------+------+
	       |
	+------+------+
	|   Process   |
	| read → rules|
	| → compare   |
	+------+------+
	       |
	+------+------+
	|   status    |
	| (write/skip)|
	+-------------+

🔄 Flow, per listed path and strictly in list order:
1. Resolve the location against the configured root
2. Missing file: report "not found" and move on
3. Read the whole file; reject content that is not valid UTF-8
4. Apply every rule in order, each replacing all of its matches
5. Identical content: report "no change", nothing is written
6. Otherwise write the new content and report "updated"

Any read, decode or write failure becomes an error result for that file only;
the next file is still processed. Only updated files count toward the summary.

PlanOperation runs the same steps without step 6's write and renders a table.

🔍 Example:

	op, err := operation.NewRewriteOperation(operation.Options{
		Config: config.Default(),
		Logger: log.New(os.Stdout, zerolog.Nop()),
	})
	summary := op.Run(ctx)
*/
package operation
