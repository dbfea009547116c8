package kinship

import (
	"testing"

	"github.com/mtlprog/whanau/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "first"},
		{2, "second"},
		{12, "twelfth"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{23, "23rd"},
		{111, "111th"},
		{112, "112th"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordinal(tt.n), "ordinal(%d)", tt.n)
	}
}

func TestCousinLabel(t *testing.T) {
	assert.Equal(t, "first cousin", cousinLabel(1, 0))
	assert.Equal(t, "first cousin once removed", cousinLabel(1, 1))
	assert.Equal(t, "second cousin third removed", cousinLabel(2, 3))
	assert.Equal(t, "13th cousin", cousinLabel(13, 0))
}

func TestAncestorAndDescendantLabels(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"parent neutral", ancestorLabel(1, model.GenderUnknown), "parent"},
		{"grandmother", ancestorLabel(2, model.GenderFemale), "grandmother"},
		{"great-great-grandfather", ancestorLabel(4, model.GenderMale), "great-great-grandfather"},
		{"son", descendantLabel(1, model.GenderMale), "son"},
		{"great-grandchild", descendantLabel(3, model.GenderOther), "great-grandchild"},
		{"aunt", auntUncleLabel(1, model.GenderFemale), "aunt"},
		{"great-great-uncle", auntUncleLabel(3, model.GenderMale), "great-great-uncle"},
		{"niece", nieceNephewLabel(1, model.GenderFemale), "niece"},
		{"grandnephew", nieceNephewLabel(2, model.GenderMale), "grandnephew"},
		{"great-grandniece/nephew", nieceNephewLabel(3, model.GenderUnknown), "great-grandniece/nephew"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestWithWhangai(t *testing.T) {
	assert.Equal(t, "mother (whangai)", withWhangai("mother", true))
	assert.Equal(t, "mother", withWhangai("mother", false))
}
