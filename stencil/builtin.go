// Copyright (c) 2012-present The sqlcraft authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package stencil

// Built-in template names.
const (
	BasicSelect      = "basic_select"
	FilteredSelect   = "filtered_select"
	JoinedSelect     = "joined_select"
	AggregatedSelect = "aggregated_select"
	PaginatedSelect  = "paginated_select"

	BasicInsert  = "basic_insert"
	BulkInsert   = "bulk_insert"
	InsertSelect = "insert_select"

	BasicUpdate  = "basic_update"
	JoinedUpdate = "joined_update"

	BasicDelete  = "basic_delete"
	JoinedDelete = "joined_delete"

	CreateTable = "create_table"
	CreateIndex = "create_index"
)

// builtinTemplates maps each built-in name to its pattern. Placeholder names
// are part of the public contract of each template.
var builtinTemplates = map[string]string{
	BasicSelect:      "SELECT $columns FROM $table",
	FilteredSelect:   "SELECT $columns FROM $table WHERE $conditions",
	JoinedSelect:     "SELECT $columns FROM $table $joins WHERE $conditions",
	AggregatedSelect: "SELECT $group_columns, $aggregates FROM $table GROUP BY $group_columns",
	PaginatedSelect:  "SELECT $columns FROM $table ORDER BY $order_by LIMIT $limit OFFSET $offset",

	BasicInsert:  "INSERT INTO $table ($columns) VALUES ($values)",
	BulkInsert:   "INSERT INTO $table ($columns) VALUES $value_sets",
	InsertSelect: "INSERT INTO $table ($columns) SELECT $select_columns FROM $source_table WHERE $conditions",

	BasicUpdate:  "UPDATE $table SET $assignments WHERE $conditions",
	JoinedUpdate: "UPDATE $table $joins SET $assignments WHERE $conditions",

	BasicDelete:  "DELETE FROM $table WHERE $conditions",
	JoinedDelete: "DELETE $table FROM $table $joins WHERE $conditions",

	CreateTable: "CREATE TABLE $table ($column_definitions)",
	CreateIndex: "CREATE INDEX $index_name ON $table ($columns)",
}
