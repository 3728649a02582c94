package catalog

import (
	"testing"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.All(), 18)

	for _, cat := range models.Categories {
		assert.NotEmpty(t, c.ByCategory(cat), cat)
	}
}

func TestValidate_DanglingReference(t *testing.T) {
	assert.ErrorIs(t, Default().Validate([]string{"ambank_unicorn"}), ErrDanglingProduct)

	small := New([]models.Product{{ID: BasicSavings, Category: models.CategorySavings}})
	assert.ErrorIs(t, small.Validate(), ErrDanglingProduct)
}

func TestNew_KeepsFirstDuplicate(t *testing.T) {
	c := New([]models.Product{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
		{ID: "b", Name: "other"},
	})
	require.Len(t, c.All(), 2)
	p, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "first", p.Name)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	p, ok := c.Get(BasicSavings)
	require.True(t, ok)
	require.NotEmpty(t, p.Features)
	p.Features[0] = "mutated"

	again, _ := c.Get(BasicSavings)
	assert.NotEqual(t, "mutated", again.Features[0])
}

func TestFallback(t *testing.T) {
	fb := Default().Fallback()
	require.Len(t, fb, 2)
	assert.Equal(t, BasicSavings, fb[0].ID)
	assert.Equal(t, models.CategorySavings, fb[0].Category)
	assert.Equal(t, LifeInsuranceBasic, fb[1].ID)
	assert.Equal(t, models.CategoryInsurance, fb[1].Category)
}

func TestFindByName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"exact id", "ambank_travel_card", TravelCard, true},
		{"exact name", "AmGeneral Travel Insurance", TravelInsurance, true},
		{"name inside sentence", "We suggest the AmBank Fixed Deposit for you", FixedDeposit, true},
		{"partial name", "Medical Card", MedicalInsurance, true},
		{"typo", "AmBank Fixd Deposit", FixedDeposit, true},
		{"unrelated", "bitcoin wallet", "", false},
		{"empty", "  ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Default().FindByName(tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, p.ID)
			}
		})
	}
}

func TestParseHint(t *testing.T) {
	h, ok := ParseHint("Travel Cards")
	require.True(t, ok)
	assert.Equal(t, HintTravelCards, h)

	h, ok = ParseHint("multi-currency-accounts")
	require.True(t, ok)
	assert.Equal(t, HintMultiCurrencyAccounts, h)

	_, ok = ParseHint("lottery")
	assert.False(t, ok)
}
