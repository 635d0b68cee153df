package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"netbackup/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func strPtr(s string) *string { return &s }

func TestSiteStore_CreateGetRoundtrip(t *testing.T) {
	db := newTestDB(t)
	sites := NewSiteStore(db)
	ctx := context.Background()

	created, err := sites.Create(ctx, SiteInput{
		Name: "NYC DC", Code: "NYC", Description: "primary", Address: "123 Broadway",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := sites.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "NYC DC", got.Name)
	assert.Equal(t, "NYC", got.Code)
	assert.Equal(t, "primary", got.Description)
	assert.Equal(t, "123 Broadway", got.Address)
}

func TestSiteStore_DeleteTwice(t *testing.T) {
	db := newTestDB(t)
	sites := NewSiteStore(db)
	ctx := context.Background()

	created, err := sites.Create(ctx, SiteInput{Name: "X", Code: "X"})
	require.NoError(t, err)

	require.NoError(t, sites.Delete(ctx, created.ID))
	assert.ErrorIs(t, sites.Delete(ctx, created.ID), ErrNotFound)
	assert.ErrorIs(t, sites.Delete(ctx, "no-such-id"), ErrNotFound)
}

func TestAdminStore_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	admins := NewAdminStore(db)
	ctx := context.Background()

	_, err := admins.Create(ctx, AdminCreateInput{
		Username: "alice", Email: "alice@example.com", PasswordHash: "h", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = admins.Create(ctx, AdminCreateInput{
		Username: "alice", Email: "alice2@example.com", PasswordHash: "h", Role: models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAdminStore_SelfDelete(t *testing.T) {
	db := newTestDB(t)
	admins := NewAdminStore(db)
	ctx := context.Background()

	a, err := admins.Create(ctx, AdminCreateInput{
		Username: "root", Email: "root@example.com", PasswordHash: "h", Role: models.RoleSuperAdmin,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, admins.Delete(ctx, a.ID, a.ID), ErrSelfDelete)

	b, err := admins.Create(ctx, AdminCreateInput{
		Username: "other", Email: "other@example.com", PasswordHash: "h", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	require.NoError(t, admins.Delete(ctx, b.ID, a.ID))
	assert.ErrorIs(t, admins.Delete(ctx, b.ID, a.ID), ErrNotFound)
}

func TestAdminStore_UpdatePartial(t *testing.T) {
	db := newTestDB(t)
	admins := NewAdminStore(db)
	ctx := context.Background()

	a, err := admins.Create(ctx, AdminCreateInput{
		Username: "bob", Email: "bob@example.com", PasswordHash: "h", Role: models.RoleReadOnly,
	})
	require.NoError(t, err)

	role := models.RoleAdmin
	updated, err := admins.Update(ctx, a.ID, AdminUpdateInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "bob", updated.Username)
	assert.Equal(t, "bob@example.com", updated.Email)
}

func TestGroupStore_MembershipIsASet(t *testing.T) {
	db := newTestDB(t)
	groups := NewGroupStore(db)
	devices := NewDeviceStore(db)
	ctx := context.Background()

	g, err := groups.Create(ctx, GroupInput{Name: "Core"})
	require.NoError(t, err)
	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-1", IPAddress: "10.0.0.1", Type: models.DeviceSwitch,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := groups.AddDevice(ctx, g.ID, d.ID)
		require.NoError(t, err)
		assert.Len(t, got.Devices, 1)
	}

	// Removing a non-member is a silent no-op.
	other, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-2", IPAddress: "10.0.0.2", Type: models.DeviceSwitch,
	})
	require.NoError(t, err)
	got, err := groups.RemoveDevice(ctx, g.ID, other.ID)
	require.NoError(t, err)
	assert.Len(t, got.Devices, 1)

	got, err = groups.RemoveDevice(ctx, g.ID, d.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Devices)
}

func TestGroupStore_DeleteDetachesDevices(t *testing.T) {
	db := newTestDB(t)
	groups := NewGroupStore(db)
	devices := NewDeviceStore(db)
	ctx := context.Background()

	g, err := groups.Create(ctx, GroupInput{Name: "Edge"})
	require.NoError(t, err)
	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "fw-1", IPAddress: "10.0.0.3", Type: models.DeviceFirewall, GroupIDs: []string{g.ID},
	})
	require.NoError(t, err)

	require.NoError(t, groups.Delete(ctx, g.ID))

	got, err := devices.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Groups)
}

func TestDeviceStore_DanglingCredentialRejected(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	ctx := context.Background()

	_, err := devices.Create(ctx, DeviceCreateInput{
		Name: "r-1", IPAddress: "10.0.0.4", Type: models.DeviceRouter,
		CredentialID: strPtr("missing"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeviceStore_UpdatePatchesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	ctx := context.Background()

	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "r-2", IPAddress: "10.0.0.5", Type: models.DeviceRouter,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceInactive, d.Status)

	status := models.DeviceMaintenance
	updated, err := devices.Update(ctx, d.ID, DeviceUpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.DeviceMaintenance, updated.Status)
	assert.Equal(t, "r-2", updated.Name)
	assert.Equal(t, "10.0.0.5", updated.IPAddress)
}

func TestDeviceStore_UpdateEmptyStringDetachesReferences(t *testing.T) {
	db := newTestDB(t)
	sites := NewSiteStore(db)
	locations := NewLocationStore(db)
	credentials := NewCredentialStore(db)
	devices := NewDeviceStore(db)
	ctx := context.Background()

	site, err := sites.Create(ctx, SiteInput{Name: "Tokyo DC", Code: "TYO"})
	require.NoError(t, err)
	loc, err := locations.Create(ctx, LocationInput{Name: "Floor 1", SiteID: site.ID})
	require.NoError(t, err)
	cred, err := credentials.Create(ctx, CredentialInput{Name: "pool", Username: "u", Password: "p"})
	require.NoError(t, err)

	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-9", IPAddress: "10.0.9.1", Type: models.DeviceSwitch,
		SiteID: &site.ID, LocationID: &loc.ID, CredentialID: &cred.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, d.CredentialID)

	empty := ""
	updated, err := devices.Update(ctx, d.ID, DeviceUpdateInput{
		SiteID: &empty, LocationID: &empty, CredentialID: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.SiteID)
	assert.Nil(t, updated.LocationID)
	assert.Nil(t, updated.CredentialID)

	// Nothing in the row dangles either.
	var row models.Device
	require.NoError(t, db.Where("id = ?", d.ID).First(&row).Error)
	assert.Nil(t, row.SiteID)
	assert.Nil(t, row.LocationID)
	assert.Nil(t, row.CredentialID)

	// Absent fields still leave references alone.
	name := "sw-9b"
	d2, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-10", IPAddress: "10.0.9.2", Type: models.DeviceSwitch, CredentialID: &cred.ID,
	})
	require.NoError(t, err)
	updated2, err := devices.Update(ctx, d2.ID, DeviceUpdateInput{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated2.CredentialID)
	assert.Equal(t, cred.ID, *updated2.CredentialID)
}

func TestDeviceStore_DeleteCascadesBackupHistory(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	backups := NewBackupStore(db)
	ctx := context.Background()

	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-3", IPAddress: "10.0.0.6", Type: models.DeviceSwitch,
	})
	require.NoError(t, err)
	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: d.ID, Status: models.BackupSuccess})
	require.NoError(t, err)

	require.NoError(t, devices.Delete(ctx, d.ID))

	var count int64
	require.NoError(t, db.Model(&models.BackupHistory{}).Where("device_id = ?", d.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPasswordStore_OnePerDevice(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	passwords := NewPasswordStore(db)
	ctx := context.Background()

	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-4", IPAddress: "10.0.0.7", Type: models.DeviceSwitch,
	})
	require.NoError(t, err)

	_, err = passwords.Create(ctx, PasswordCreateInput{DeviceID: &d.ID, Name: "primary"})
	require.NoError(t, err)

	_, err = passwords.Create(ctx, PasswordCreateInput{DeviceID: &d.ID, Name: "secondary"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = passwords.Create(ctx, PasswordCreateInput{DeviceID: strPtr("missing"), Name: "x"})
	assert.ErrorIs(t, err, ErrDeviceNotFound)

	// Unattached records are allowed, any number of them.
	_, err = passwords.Create(ctx, PasswordCreateInput{Name: "spare-1"})
	require.NoError(t, err)
	_, err = passwords.Create(ctx, PasswordCreateInput{Name: "spare-2"})
	require.NoError(t, err)
}

func TestBackupStore_SuccessStampsLastBackup(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	backups := NewBackupStore(db)
	ctx := context.Background()

	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "sw-5", IPAddress: "10.0.0.8", Type: models.DeviceSwitch,
	})
	require.NoError(t, err)
	require.Nil(t, d.LastBackup)

	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: d.ID, Status: models.BackupFailed, Message: "timeout"})
	require.NoError(t, err)
	got, err := devices.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastBackup)

	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: d.ID, Status: models.BackupSuccess})
	require.NoError(t, err)
	got, err = devices.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastBackup)

	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: "missing", Status: models.BackupSuccess})
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDashboard_CountsByStatusNotSubtraction(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	dashboard := NewDashboardStore(db)
	ctx := context.Background()

	for _, st := range []models.DeviceStatus{
		models.DeviceActive, models.DeviceInactive, models.DevicePending, models.DeviceMaintenance,
	} {
		_, err := devices.Create(ctx, DeviceCreateInput{
			Name: "d-" + string(st), IPAddress: "10.1.0.1", Type: models.DeviceRouter, Status: st,
		})
		require.NoError(t, err)
	}

	stats, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalDevices)
	assert.EqualValues(t, 1, stats.ActiveDevices)
	assert.EqualValues(t, 1, stats.InactiveDevices)
	// pending + maintenance fall into neither bucket
	assert.Less(t, stats.ActiveDevices+stats.InactiveDevices, stats.TotalDevices)
}

func TestDashboard_BackupWindowAndRecent(t *testing.T) {
	db := newTestDB(t)
	devices := NewDeviceStore(db)
	backups := NewBackupStore(db)
	dashboard := NewDashboardStore(db)
	ctx := context.Background()

	d, err := devices.Create(ctx, DeviceCreateInput{
		Name: "core-1", IPAddress: "10.1.0.2", Type: models.DeviceRouter,
	})
	require.NoError(t, err)

	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: d.ID, Status: models.BackupSuccess})
	require.NoError(t, err)
	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: d.ID, Status: models.BackupFailed})
	require.NoError(t, err)
	_, err = backups.Create(ctx, BackupCreateInput{DeviceID: d.ID, Status: models.BackupInProgress})
	require.NoError(t, err)

	// A record outside the 24h window counts for nothing.
	old := models.BackupHistory{DeviceID: d.ID, Status: models.BackupSuccess}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Model(&old).Update("created_at", time.Now().UTC().Add(-48*time.Hour)).Error)

	stats, err := dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalBackups)
	assert.EqualValues(t, 1, stats.SuccessfulBackups)
	assert.EqualValues(t, 1, stats.FailedBackups)
	// in_progress is in neither success nor failure
	assert.Less(t, stats.SuccessfulBackups+stats.FailedBackups, stats.TotalBackups)

	require.NotEmpty(t, stats.RecentActivities)
	assert.Equal(t, "core-1", stats.RecentActivities[0].DeviceName)
}

func TestLocationStore_NestedSite(t *testing.T) {
	db := newTestDB(t)
	sites := NewSiteStore(db)
	locations := NewLocationStore(db)
	ctx := context.Background()

	site, err := sites.Create(ctx, SiteInput{Name: "NYC DC", Code: "NYC"})
	require.NoError(t, err)
	loc, err := locations.Create(ctx, LocationInput{Name: "Floor 1", SiteID: site.ID})
	require.NoError(t, err)

	require.NotNil(t, loc.Site)
	assert.Equal(t, "NYC", loc.Site.Code)

	bySite, err := locations.ListBySite(ctx, site.ID)
	require.NoError(t, err)
	require.Len(t, bySite, 1)
	assert.Equal(t, loc.ID, bySite[0].ID)
}
