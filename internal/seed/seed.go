// Package seed fills an empty store with a bootstrap super admin and
// demo fixtures. Schema changes are wipe-and-recreate: Run with
// destructive=true drops every table first.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"netbackup/internal/auth"
	"netbackup/internal/logs"
	"netbackup/internal/models"
)

// Run migrates the schema and inserts fixtures. A store that already
// holds an admin is left untouched unless destructive is set.
func Run(db *gorm.DB, destructive bool) error {
	if destructive {
		// Children first, join table by name.
		if err := db.Migrator().DropTable("device_group_association"); err != nil {
			return fmt.Errorf("drop association table: %w", err)
		}
		all := models.All()
		for i := len(all) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(all[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logs.Logger.Info("database already initialized, skipping seed")
		return nil
	}

	if err := createAdmins(db); err != nil {
		return err
	}
	if err := createUsers(db); err != nil {
		return err
	}
	return createInventory(db)
}

func createAdmins(db *gorm.DB) error {
	hash, err := auth.HashPassword("superadmin")
	if err != nil {
		return err
	}
	admin := models.Admin{
		Username: "superadmin",
		Email:    "superadmin@example.com",
		Password: hash,
		Role:     models.RoleSuperAdmin,
		Status:   models.AdminActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logs.Logger.Infof("created bootstrap admin %q", admin.Username)
	return nil
}

func createUsers(db *gorm.DB) error {
	type entry struct {
		role, desc, user, pass string
	}
	for _, e := range []entry{
		{"admin", "Administrator", "admin", "admin123"},
		{"operator", "Operator", "operator", "operator123"},
		{"viewer", "Viewer", "viewer", "viewer123"},
	} {
		role := models.Role{Name: e.role, Description: e.desc}
		if err := db.Create(&role).Error; err != nil {
			return err
		}
		hash, err := auth.HashPassword(e.pass)
		if err != nil {
			return err
		}
		user := models.User{
			Username:       e.user,
			Email:          e.user + "@example.com",
			HashedPassword: hash,
			RoleID:         &role.ID,
			IsActive:       true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

func createInventory(db *gorm.DB) error {
	credentials := []models.DeviceCredential{
		{Name: "Cisco Switch Credentials", Username: "admin", Password: "cisco123",
			EnablePassword: "enable123", Description: "Default credentials for Cisco switches"},
		{Name: "Juniper Router Credentials", Username: "juniper_admin", Password: "juniper123",
			Description: "Default credentials for Juniper routers"},
		{Name: "Firewall Admin", Username: "firewall_admin", Password: "firewall123",
			Description: "Credentials for firewall devices"},
	}
	for i := range credentials {
		if err := db.Create(&credentials[i]).Error; err != nil {
			return err
		}
	}

	sites := []models.Site{
		{Name: "New York DC", Code: "NYC", Description: "New York Data Center", Address: "123 Broadway, New York, NY"},
		{Name: "London DC", Code: "LON", Description: "London Data Center", Address: "456 Oxford Street, London, UK"},
		{Name: "Tokyo DC", Code: "TYO", Description: "Tokyo Data Center", Address: "789 Shibuya, Tokyo, Japan"},
	}
	var locations []models.Location
	for i := range sites {
		if err := db.Create(&sites[i]).Error; err != nil {
			return err
		}
		for floor := 1; floor <= 3; floor++ {
			loc := models.Location{
				Name:   fmt.Sprintf("Floor %d", floor),
				SiteID: sites[i].ID,
				Floor:  fmt.Sprintf("%d", floor),
			}
			if err := db.Create(&loc).Error; err != nil {
				return err
			}
			locations = append(locations, loc)
		}
	}

	groups := []models.DeviceGroup{
		{Name: "Core Network", Description: "Core network devices"},
		{Name: "Access Layer", Description: "Access layer switches"},
		{Name: "Security Devices", Description: "Firewalls and security appliances"},
	}
	for i := range groups {
		if err := db.Create(&groups[i]).Error; err != nil {
			return err
		}
	}

	types := []models.DeviceType{models.DeviceRouter, models.DeviceSwitch, models.DeviceFirewall}
	statuses := []models.DeviceStatus{models.DeviceActive, models.DeviceInactive, models.DeviceMaintenance}

	n := 0
	for _, loc := range locations {
		for i := 0; i < 3; i++ {
			n++
			cred := credentials[rand.Intn(len(credentials))]
			group := groups[rand.Intn(len(groups))]
			d := models.Device{
				Name:         fmt.Sprintf("dev-%03d", n),
				IPAddress:    fmt.Sprintf("192.168.%d.%d", rand.Intn(254)+1, rand.Intn(254)+1),
				Type:         types[rand.Intn(len(types))],
				Status:       statuses[rand.Intn(len(statuses))],
				SiteID:       &loc.SiteID,
				LocationID:   &loc.ID,
				CredentialID: &cred.ID,
				Groups:       []models.DeviceGroup{group},
			}
			if err := db.Create(&d).Error; err != nil {
				return err
			}

			// A couple of backup records per device inside the
			// dashboard's 24h window.
			for j := 0; j < 2; j++ {
				status := models.BackupSuccess
				message := "Backup completed"
				if rand.Intn(4) == 0 {
					status = models.BackupFailed
					message = "Connection timed out"
				}
				b := models.BackupHistory{
					DeviceID:       d.ID,
					Status:         status,
					Message:        message,
					ConfigFilePath: fmt.Sprintf("/backups/%s/%d.cfg", d.Name, j),
				}
				if err := db.Create(&b).Error; err != nil {
					return err
				}
				if status == models.BackupSuccess {
					now := time.Now().UTC()
					if err := db.Model(&d).Update("last_backup", now).Error; err != nil {
						return err
					}
				}
			}
		}
	}

	logs.Logger.Infof("seeded %d sites, %d locations, %d devices", len(sites), len(locations), n)
	return nil
}
