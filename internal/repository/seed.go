package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parttimejobs/internal/model"
)

// SeedRoles inserts the three fixed roles with their well-known ids.
// Registration and profile creation rely on these ids being stable.
func SeedRoles(db *gorm.DB) error {
	roles := []model.Role{
		{ID: model.RoleIDAdmin, RoleName: model.RoleAdmin},
		{ID: model.RoleIDStudent, RoleName: model.RoleStudent},
		{ID: model.RoleIDEmployer, RoleName: model.RoleEmployer},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
}
