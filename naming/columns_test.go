package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/coltools/colerrors"
	"github.com/erraggy/coltools/frame"
	"github.com/erraggy/coltools/series"
)

func TestConvertColumn(t *testing.T) {
	in, err := series.NewStringNullable(
		"labels",
		[]string{"UserProfile", "first name", ""},
		[]bool{false, false, true},
	)
	require.NoError(t, err)

	out, err := Convert(in, "labels_snake", Snake)
	require.NoError(t, err)

	assert.Equal(t, in.Len(), out.Len())
	v, ok := out.StrAt(0)
	require.True(t, ok)
	assert.Equal(t, "user_profile", v)
	v, ok = out.StrAt(1)
	require.True(t, ok)
	assert.Equal(t, "first_name", v)
	assert.True(t, out.IsNull(2))
}

func TestRenameColumns(t *testing.T) {
	f, err := frame.New(
		series.NewString("first name", []string{"ada"}),
		series.NewInt64("UserAge", []int64{36}),
	)
	require.NoError(t, err)

	t.Run("snake", func(t *testing.T) {
		g, err := RenameColumns(f, Snake)
		require.NoError(t, err)
		assert.Equal(t, []string{"first_name", "user_age"}, g.Columns())
	})

	t.Run("pascal", func(t *testing.T) {
		g, err := RenameColumns(f, Pascal)
		require.NoError(t, err)
		assert.Equal(t, []string{"FirstName", "UserAge"}, g.Columns())
	})

	t.Run("camel", func(t *testing.T) {
		g, err := RenameColumns(f, Camel)
		require.NoError(t, err)
		assert.Equal(t, []string{"firstName", "userAge"}, g.Columns())
	})

	t.Run("pascal-snake", func(t *testing.T) {
		g, err := RenameColumns(f, PascalSnake)
		require.NoError(t, err)
		assert.Equal(t, []string{"First_Name", "User_Age"}, g.Columns())
	})

	t.Run("data survives renaming", func(t *testing.T) {
		g, err := RenameColumns(f, Kebab)
		require.NoError(t, err)
		col, ok := g.Column("first-name")
		require.True(t, ok)
		v, okAt := col.StrAt(0)
		require.True(t, okAt)
		assert.Equal(t, "ada", v)
		// Original untouched.
		assert.Equal(t, []string{"first name", "UserAge"}, f.Columns())
	})

	t.Run("collision fails", func(t *testing.T) {
		h, err := frame.New(
			series.NewInt64("user_id", []int64{1}),
			series.NewInt64("UserID", []int64{2}),
		)
		require.NoError(t, err)
		_, err = RenameColumns(h, Snake)
		require.Error(t, err)
		assert.True(t, errors.Is(err, colerrors.ErrInvalidInput))
	})
}
