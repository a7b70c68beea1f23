/*
Package config loads the optional tidydir settings file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+--+  +---+---+  +----+---+ +---+---+
	| YAML|  |  JSON |  |  TOML  | |  HCL  |
	+-----+  +-------+  +--------+ +-------+

🎯 Purpose:
- Read .tidydir.{yaml,yml,json,toml,hcl}
- Validate the conflict policy, ignore globs and inline categories
- Resolve the category table the organizer runs with

🔄 Table resolution:
1. The file named by "table", relative to the settings file, or the built-in table
2. Inline "categories" layered on top

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".tidydir.yaml", false)
	if err != nil {
		return err
	}
	tbl, err := cfg.ResolveTable(ctx)
*/
package config
