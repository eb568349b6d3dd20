package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	t := modelType(model)

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := modelType(model)
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, col)
		}
	}
	return res
}

// Values returns field values of a model in the order of Columns.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()
	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

func modelType(model any) reflect.Type {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// Brand DDL methods
func (b Brand) TableDDL() string {
	return generateDDL(b, b.TableName())
}

func (b Brand) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_brands_slug ON brands(slug);",
	}
}

func (b Brand) TableName() string {
	return "brands"
}

// Collection DDL methods
func (c Collection) TableDDL() string {
	return generateDDL(c, c.TableName())
}

func (c Collection) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_collections_slug ON collections(slug);",
		"CREATE INDEX idx_collections_brand ON collections(brand_id);",
	}
}

func (c Collection) TableName() string {
	return "collections"
}

// Era DDL methods
func (e Era) TableDDL() string {
	return generateDDL(e, e.TableName())
}

func (e Era) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_eras_collection ON eras(collection_id);",
	}
}

func (e Era) TableName() string {
	return "eras"
}

// EraEvent DDL methods
func (ev EraEvent) TableDDL() string {
	return generateDDL(ev, ev.TableName())
}

func (ev EraEvent) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_era_events_pos ON era_events(era_id, position);",
	}
}

func (ev EraEvent) TableName() string {
	return "era_events"
}

// Variant DDL methods
func (v Variant) TableDDL() string {
	return generateDDL(v, v.TableName())
}

func (v Variant) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_variants_id ON variants(id);",
		"CREATE INDEX idx_variants_era ON variants(era_id);",
	}
}

func (v Variant) TableName() string {
	return "variants"
}
