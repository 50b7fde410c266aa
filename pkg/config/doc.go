// Package config loads plan files: batches of changes applied in one infrep run.
//
//	            +-------------+
//	            |    Plan     |
//	            |  (changes)  |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+----+  +----+----+  +----+----+
//	|   YAML   |  |   HCL   |  |  JSON   |
//	|  Parser  |  | Parser  |  | Parser  |
//	+----------+  +---------+  +---------+
//
// 🔄 Flow:
//  1. parser.GetParser picks a parser by extension
//  2. the parser decodes, rejecting unknown fields
//  3. model.Plan.Validate fills default modes and checks each change
//  4. ChangeSpecs expands globs and builds text.ChangeSpec values
//
// 📝 YAML:
//
//	confirm_when_no_changes: false
//	changes:
//	  - input: "foo"
//	    output: "bar"
//	    input_mode: literal   # or regex
//	    output_mode: literal  # or eval
//	    files: [a.txt]
//	    globs: ["src/**/*.go"]
//
// 📝 HCL uses one change block per entry and may read env.NAME.
//
// Every failure wraps model.ErrInvalidPlan.
package config
