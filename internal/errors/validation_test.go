package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dabingnn/QSanguosha/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("kingdom", "is invalid")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: kingdom: is invalid; name: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("hp", "must be between %d and %d", 1, 8).
		RequiredField("kingdom")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "caocao", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("hp", 0, 1, 8, vb)
	errors.ValidateRange("count", 3, 1, 8, vb)

	meta := errors.GetMeta(vb.Build())
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be between 1 and 8"}, validationErrors["hp"])
	s.Assert().NotContains(validationErrors, "count")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	genders := []string{"male", "female", "neuter"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("gender", "robot", genders, vb)
	errors.ValidateEnum("other_gender", "female", genders, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["gender"][0], "must be one of: male, female, neuter")
	s.Assert().NotContains(validationErrors, "other_gender")
}
