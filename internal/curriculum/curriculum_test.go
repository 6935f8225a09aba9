package curriculum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub004/internal/calendar"
	"github.com/sirashofficial/learnership-management-sub004/internal/domain"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()

	assert.Equal(t, 140, c.QualificationCredits)
	assert.Equal(t, 138, c.RequiredCredits)
	require.Len(t, c.Modules, 6)

	var credits []int
	for _, m := range c.Modules {
		credits = append(credits, m.Credits)
	}
	assert.Equal(t, []int{16, 24, 22, 26, 23, 26}, credits)
	assert.Equal(t, 137, c.TotalCredits())
}

func TestDefault_UnitSpansMatchModuleCredits(t *testing.T) {
	// Rounding up per unit must not stretch a module past ceil(credits * 1.25).
	for _, m := range Default().Modules {
		span := 0
		for _, us := range m.UnitStandards {
			span += calendar.CreditsToDurationDays(us.Credits, calendar.DaysPerCredit)
		}
		assert.Equal(t, calendar.CreditsToDurationDays(m.Credits, calendar.DaysPerCredit), span, m.Code)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Modules[0].Credits = 999
	assert.Equal(t, 16, Default().Modules[0].Credits)
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{
			name:  "missing id",
			yaml:  "name: X\nmodules:\n  - {code: M1, name: A, credits: 4, unit_standards: [{id: U1, credits: 4}]}\n",
			field: "id",
		},
		{
			name:  "no modules",
			yaml:  "id: x\nname: X\nmodules: []\n",
			field: "modules",
		},
		{
			name:  "module without unit standards",
			yaml:  "id: x\nname: X\nmodules:\n  - {code: M1, name: A, credits: 4, unit_standards: []}\n",
			field: "modules[0].unit_standards",
		},
		{
			name:  "zero credit unit",
			yaml:  "id: x\nname: X\nmodules:\n  - {code: M1, name: A, credits: 4, unit_standards: [{id: U1, credits: 4}, {id: U2, credits: 0}]}\n",
			field: "modules[0].unit_standards[1].credits",
		},
		{
			name:  "module credit mismatch",
			yaml:  "id: x\nname: X\nmodules:\n  - {code: M1, name: A, credits: 5, unit_standards: [{id: U1, credits: 4}]}\n",
			field: "modules[0].credits",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("modules: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, defaultCurriculum, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nvc-nqf4", c.ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("")
	require.NoError(t, err)
	assert.Equal(t, "nvc-nqf4", src.Current().ID)

	custom := &domain.Curriculum{ID: "custom"}
	assert.Same(t, custom, StaticSource(custom).Current())
}
