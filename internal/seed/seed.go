// Package seed installs the permission and role catalogue and the first
// administrator. Running it again changes nothing.
package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/utils"
)

// Admin is the bootstrap administrator account.
type Admin struct {
	Username string
	Email    string
	Password string
}

var rolePermissions = map[string][]string{
	models.RoleAdmin:       {models.PermRead, models.PermWrite, models.PermUpdate, models.PermDelete},
	models.RoleClubManager: {models.PermRead, models.PermWrite, models.PermUpdate, models.PermDelete},
	models.RoleOrganizer:   {models.PermRead, models.PermWrite, models.PermUpdate, models.PermDelete},
	models.RoleReferee:     {models.PermRead, models.PermWrite, models.PermUpdate, models.PermDelete},
	models.RoleUser:        {models.PermRead},
}

var roleOrder = []string{models.RoleAdmin, models.RoleClubManager, models.RoleOrganizer, models.RoleReferee, models.RoleUser}

func Run(ctx context.Context, db *gorm.DB, admin Admin) error {
	log := logging.FromContext(ctx)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		perms := make(map[string]models.Permission)
		for _, name := range []string{models.PermRead, models.PermWrite, models.PermUpdate, models.PermDelete} {
			p := models.Permission{Name: name}
			if err := tx.Where(models.Permission{Name: name}).FirstOrCreate(&p).Error; err != nil {
				return fmt.Errorf("seed permission %s: %w", name, err)
			}
			perms[name] = p
		}

		for _, name := range roleOrder {
			role := models.Role{Name: name}
			if err := tx.Where(models.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", name, err)
			}
			var want []models.Permission
			for _, pn := range rolePermissions[name] {
				want = append(want, perms[pn])
			}
			if err := tx.Model(&role).Association("Permissions").Replace(want); err != nil {
				return fmt.Errorf("seed permissions of role %s: %w", name, err)
			}
		}

		if admin.Email == "" || admin.Password == "" {
			log.Warn("admin account not configured, skipping")
			return nil
		}
		var existing models.User
		err := tx.Where("email = ? OR username = ?", admin.Email, admin.Username).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var adminRole models.Role
		if err := tx.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
			return err
		}
		hash, err := utils.HashPassword(admin.Password)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		u := models.User{Username: admin.Username, Email: admin.Email, Password: hash, RoleID: adminRole.ID}
		if err := tx.Create(&u).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		log.Info("admin account created", "email", admin.Email)
		return nil
	})
}
