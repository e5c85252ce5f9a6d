package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabingnn/QSanguosha/internal/entities"
	"github.com/dabingnn/QSanguosha/internal/errors"
)

func TestPackage_NewGeneral(t *testing.T) {
	pkg := entities.NewPackage("standard", nil)

	caocao, err := pkg.NewGeneral("$caocao", "wei", 4, true, false, false)
	require.NoError(t, err)
	assert.Equal(t, "standard", caocao.PackageName())

	_, err = pkg.NewGeneral("caocao", "wei", 4, true, false, false)
	assert.True(t, errors.IsAlreadyExists(err))

	found, ok := pkg.General("caocao")
	require.True(t, ok)
	assert.Same(t, caocao, found)

	_, ok = pkg.General("liubei")
	assert.False(t, ok)
}

func TestPackage_AddGeneral(t *testing.T) {
	standard := entities.NewPackage("standard", nil)
	wind := entities.NewPackage("wind", nil)

	xiahouyuan := entities.NewGeneral(nil, "xiahouyuan", "wei", 4, true, false, false)
	require.NoError(t, wind.AddGeneral(xiahouyuan))

	err := standard.AddGeneral(xiahouyuan)
	assert.True(t, errors.IsFailedPrecondition(err))
	assert.True(t, errors.IsInvalidArgument(standard.AddGeneral(nil)))
	assert.Equal(t, "wind", xiahouyuan.PackageName())
}

func TestPackage_Order(t *testing.T) {
	pkg := entities.NewPackage("standard", nil)
	for _, name := range []string{"liubei", "guanyu", "zhangfei"} {
		_, err := pkg.NewGeneral(name, "shu", 4, true, false, false)
		require.NoError(t, err)
	}
	pkg.AddSkill(entities.NewSkill("rende", ""))
	pkg.AddSkill(nil)

	names := make([]string, 0, 3)
	for _, general := range pkg.Generals() {
		names = append(names, general.Name())
	}
	assert.Equal(t, []string{"liubei", "guanyu", "zhangfei"}, names)
	assert.Len(t, pkg.Skills(), 1)
}
