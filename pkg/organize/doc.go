/*
Package organize sorts the files of a single directory into category subdirectories.

	+-------------+      +-------------+
	|   Table     | ---> |  Organizer  |
	| (ext->cat)  |      | (snapshot)  |
	+-------------+      +------+------+
	                            |
	                  +---------+---------+
	                  |                   |
	           +------+------+     +------+------+
	           |  Notifier   |     |    Mover    |
	           | (one/move)  |     |  (rename)   |
	           +-------------+     +-------------+

🎯 Purpose:
- Take one snapshot of the regular, non-hidden files in a directory
- Resolve each extension to a category through a table.Table
- Create one subdirectory per category
- Move every file of the snapshot into its category subdirectory

🔄 Flow:
1. New stats the directory, scans it and builds the extension map
2. New creates the category directories
3. OrganizeFiles notifies, then moves, one file at a time

⚡ Guarantees:
- Destinations are always computed from the Organizer's own directory
- The snapshot and the extension map never change after New returns
- Hidden files and subdirectories are never touched
- The first failed move stops the run unless ContinueOnError is set

🔍 Example:

	org, err := organize.New(ctx, organize.Options{
		Directory: "/home/me/Downloads",
		Table:     table.Default(),
	})
	if err != nil {
		return err
	}
	result, err := org.OrganizeFiles(ctx)
*/
package organize
