//go:build unit

package pet_test

import (
	"strings"
	"testing"

	"petboard/internal/domain/pet"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(pet.Pet{}),
	cmpopts.EquateEmpty(),
}

func TestNewPet(t *testing.T) {
	ownerID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := pet.NewPet("Hachi", "dog", 3, ownerID)
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, err := pet.NewPet("Hachi", "dog", 3, ownerID)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Pet mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsOwnedBy(ownerID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("年齢0歳OK（境界値）", func(t *testing.T) {
		p, err := pet.NewPet("Chibi", "cat", 0, ownerID)
		require.NoError(t, err)
		assert.Equal(t, int32(0), p.Age())
	})

	t.Run("検証エラー", func(t *testing.T) {
		cases := []struct {
			name    string
			petName string
			petType string
			age     int32
			errIs   error
		}{
			{name: "名前が空NG", petName: "", petType: "dog", age: 1, errIs: pet.ErrEmptyName},
			{name: "名前が空白のみNG", petName: "   ", petType: "dog", age: 1, errIs: pet.ErrEmptyName},
			{name: "名前が81文字NG", petName: strings.Repeat("a", 81), petType: "dog", age: 1, errIs: pet.ErrNameTooLong},
			{name: "種別が空NG", petName: "Hachi", petType: "", age: 1, errIs: pet.ErrEmptyType},
			{name: "種別が21文字NG", petName: "Hachi", petType: strings.Repeat("b", 21), age: 1, errIs: pet.ErrTypeTooLong},
			{name: "負の年齢NG", petName: "Hachi", petType: "dog", age: -1, errIs: pet.ErrNegativeAge},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pet.NewPet(tc.petName, tc.petType, tc.age, ownerID)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
