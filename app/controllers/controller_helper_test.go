package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourmove-ai/admin-dashboard/app/models"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("thanks@yourmove.ai"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
}

func TestVerifyAdminPasswordPlain(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	assert.True(t, verifyAdminPassword("hunter2"))
	assert.False(t, verifyAdminPassword("wrong"))
	assert.False(t, verifyAdminPassword(""))
}

func TestVerifyAdminPasswordHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("ADMIN_PASSWORD", "something-else")

	assert.True(t, verifyAdminPassword("hunter2"))
	assert.False(t, verifyAdminPassword("something-else"))
}

func TestVerifyAdminPasswordUnset(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "")

	assert.False(t, verifyAdminPassword(""))
	assert.False(t, verifyAdminPassword("anything"))
}

func TestReportSections(t *testing.T) {
	report := models.NewReport("a@b.com")
	report.Refreshes = []map[string]interface{}{{"email": "a@b.com"}}
	report.RecordError(models.CollectionRequests, assert.AnError)

	sections := reportSections(report)
	require.Len(t, sections, 4)

	byName := make(map[string]ReportSection, len(sections))
	for _, s := range sections {
		byName[s.Name] = s
	}

	assert.Equal(t, 1, byName[models.CollectionRefreshes].Count)
	assert.NotEmpty(t, byName[models.CollectionRefreshes].JSON)

	assert.NotEmpty(t, byName[models.CollectionRequests].Err)
	assert.Empty(t, byName[models.CollectionRequests].JSON)

	// Collections without data still render as empty JSON arrays.
	assert.Equal(t, 0, byName[models.CollectionProfiles].Count)
	assert.Equal(t, "[]", byName[models.CollectionProfiles].JSON)
}
