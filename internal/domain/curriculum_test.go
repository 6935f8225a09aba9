package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCurriculum() *Curriculum {
	return &Curriculum{
		ID:                   "test",
		QualificationCredits: 20,
		RequiredCredits:      18,
		Modules: []Module{
			{Code: "M1", Name: "One", Credits: 12, UnitStandards: []UnitStandard{
				{ID: "100", Credits: 4},
				{ID: "101", Credits: 8},
			}},
			{Code: "M2", Name: "Two", Credits: 6, UnitStandards: []UnitStandard{
				{ID: "200", Credits: 6},
			}},
		},
	}
}

func TestCurriculumValidate_OK(t *testing.T) {
	c := validCurriculum()
	require.NoError(t, c.Validate())
	assert.Equal(t, 18, c.TotalCredits())
	assert.Equal(t, 18, c.CreditCap())
	assert.Equal(t, 8, c.UnitCredits()["101"])
}

func TestCurriculumValidate_Empty(t *testing.T) {
	err := (&Curriculum{}).Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "modules", ve.Field)
}

func TestCurriculumValidate_ModuleWithoutUnits(t *testing.T) {
	c := validCurriculum()
	c.Modules[1].UnitStandards = nil
	var ve *ValidationError
	require.ErrorAs(t, c.Validate(), &ve)
	assert.Equal(t, "modules[1].unit_standards", ve.Field)
}

func TestCurriculumValidate_NonPositiveCredits(t *testing.T) {
	c := validCurriculum()
	c.Modules[0].UnitStandards[1].Credits = 0
	var ve *ValidationError
	require.ErrorAs(t, c.Validate(), &ve)
	assert.Equal(t, "modules[0].unit_standards[1].credits", ve.Field)
}

func TestCurriculumValidate_ModuleSumMismatch(t *testing.T) {
	c := validCurriculum()
	c.Modules[0].Credits = 13
	var ve *ValidationError
	require.ErrorAs(t, c.Validate(), &ve)
	assert.Equal(t, "modules[0].credits", ve.Field)
}

func TestCurriculumValidate_DuplicateUnit(t *testing.T) {
	c := validCurriculum()
	c.Modules[1].UnitStandards[0].ID = "100"
	var ve *ValidationError
	require.ErrorAs(t, c.Validate(), &ve)
	assert.Contains(t, ve.Message, "already listed")
}

func TestCreditCap_FallsBackToTotal(t *testing.T) {
	c := validCurriculum()
	c.RequiredCredits = 0
	assert.Equal(t, 18, c.CreditCap())
}
