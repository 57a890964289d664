package repository

import (
	"testing"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMiscChargeRepository(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewMiscChargeRepository(testDB)

	charge := &model.MiscCharge{MemberID: "m1", Title: "택배 재발송", Amount: 35}
	require.NoError(t, repo.Create(charge))
	require.NoError(t, repo.Create(&model.MiscCharge{MemberID: "m2", Title: "포장재", Amount: 10}))
	assert.Equal(t, model.MiscChargeUnpaid, charge.Status)

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.FindAll("m1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "택배 재발송", mine[0].Title)

	require.NoError(t, repo.UpdateStatus(charge.ID, model.MiscChargePaid))
	found, err := repo.FindByID(charge.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MiscChargePaid, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus("missing", model.MiscChargePaid), gorm.ErrRecordNotFound)
}
