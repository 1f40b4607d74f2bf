package sqlbuild

import "strings"

// CreateTable returns a CREATE TABLE IF NOT EXISTS statement. Column
// definitions may carry constraints (PRIMARY KEY, FOREIGN KEY ... REFERENCES,
// and so on) and go through untouched.
func CreateTable(name string, columnDefs []string) string {
	return "CREATE TABLE IF NOT EXISTS " + name + " (" + strings.Join(columnDefs, ", ") + ")"
}

// DropTable returns a DROP TABLE IF EXISTS statement.
func DropTable(name string) string {
	return "DROP TABLE IF EXISTS " + name
}

// AlterColumn returns a single-column ALTER TABLE statement. op is the
// literal SQL keyword (ADD or DROP).
func AlterColumn(table, op, columnDef string) string {
	return "ALTER TABLE " + table + " " + op + " COLUMN " + columnDef
}

// Insert returns INSERT INTO <table> (c1, ...) VALUES (?, ...) with one
// placeholder per column.
func Insert(table string, columns []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(") VALUES (")
	for i := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteByte(')')
	return b.String()
}

// Update returns UPDATE <table> SET c1 = ?, ... with the optional raw
// condition appended. An empty condition targets every row.
func Update(table string, columns []string, condition string) string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	for i, c := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c)
		b.WriteString(" = ?")
	}
	return withCondition(b.String(), condition)
}

// Delete returns DELETE FROM <table> with the optional condition appended.
func Delete(table, condition string) string {
	return withCondition("DELETE FROM "+table, condition)
}

// Select returns SELECT * FROM <table> with the optional condition appended.
func Select(table, condition string) string {
	return withCondition("SELECT * FROM "+table, condition)
}

func withCondition(stmt, condition string) string {
	if condition == "" {
		return stmt
	}
	return stmt + " " + condition
}
