package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in dependency order, parents first.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Brand{},
		&Collection{},
		&Era{},
		&EraEvent{},
		&Variant{},
	}
}

// TableNames returns table names in dependency order, parents first.
func TableNames() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, m := range models {
		res[i] = m.TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	dst := make([]any, len(models))
	for i, m := range models {
		dst[i] = m
	}
	return db.AutoMigrate(dst...)
}
