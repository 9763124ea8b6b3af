package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omazm/asset-manager/models"
)

func TestCreateAssetType(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewAssetTypeService(db, staging)

	// 预先暂存一份旧副本，创建成功后应被失效
	require.NoError(t, staging.WriteAssetTypes([]models.AssetType{}))

	created, err := svc.CreateAssetType("  Desk  ", `{"type":"desk","elements":[]}`)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Desk", created.Name)

	got, err := svc.GetAssetTypeByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk", got.Name)

	_, ok := staging.ReadAssetTypes()
	assert.False(t, ok, "创建后暂存副本应被失效")
}

func TestCreateAssetTypeDuplicateName(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewAssetTypeService(db, staging)

	_, err := svc.CreateAssetType("Desk", `{"type":"desk"}`)
	require.NoError(t, err)

	_, err = svc.CreateAssetType("Desk", `{"type":"desk2"}`)
	assert.ErrorIs(t, err, ErrAssetTypeExists)

	// 重名失败不写库
	var count int64
	require.NoError(t, db.Model(&models.AssetType{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateAssetTypeValidation(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewAssetTypeService(db, staging)

	_, err := svc.CreateAssetType("", `{"type":"desk"}`)
	assert.Error(t, err)

	_, err = svc.CreateAssetType("Desk", "")
	assert.ErrorIs(t, err, ErrInvalidIconData)

	_, err = svc.CreateAssetType("Desk", "{not valid json")
	assert.ErrorIs(t, err, ErrInvalidIconData)
}

func TestGetAssetTypeByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	staging := newTestStaging(t)
	svc := NewAssetTypeService(db, staging)

	_, err := svc.GetAssetTypeByID("no-such-id")
	assert.ErrorIs(t, err, ErrAssetTypeNotFound)
}
