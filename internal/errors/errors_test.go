package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rune-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "actor not found",
			expected: "NOT_FOUND: actor not found",
		},
		{
			name:     "incompatible target error",
			code:     errors.CodeIncompatibleTarget,
			message:  "rune cannot be etched onto this item",
			expected: "INCOMPATIBLE_TARGET: rune cannot be etched onto this item",
		},
		{
			name:     "no free slot error",
			code:     errors.CodeNoFreeSlot,
			message:  "no free property rune slot",
			expected: "NO_FREE_SLOT: no free property rune slot",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.UnresolvedRune("no armor mapping for rune").
		WithMeta("rune", "flaming").
		WithMeta("target_id", "item_123")

	s.Assert().Equal("flaming", err.Meta["rune"])
	s.Assert().Equal("item_123", err.Meta["target_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NoFreeSlot("slots exhausted")
	wrapped := errors.Wrap(inner, "failed to apply property rune")

	s.Assert().Equal(errors.CodeNoFreeSlot, wrapped.Code)
	s.Assert().True(errors.IsNoFreeSlot(wrapped))
	s.Assert().ErrorIs(wrapped, inner)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	inner := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(inner, "failed to load actor")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().ErrorIs(wrapped, inner)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	inner := fmt.Errorf("redis: nil")
	wrapped := errors.WrapWithCode(inner, errors.CodeNotFound, "item not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestDomainCodeHelpers() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"incompatible target", errors.IncompatibleTarget("nope"), errors.IsIncompatibleTarget},
		{"no free slot", errors.NoFreeSlotf("%d used", 2), errors.IsNoFreeSlot},
		{"unresolved rune", errors.UnresolvedRune("unknown"), errors.IsUnresolvedRune},
		{"insufficient funds", errors.InsufficientFunds("broke"), errors.IsInsufficientFunds},
		{"catalog unavailable", errors.CatalogUnavailable("offline"), errors.IsCatalogUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().True(tc.check(tc.err))
			s.Assert().False(errors.IsNotFound(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeInsufficientFunds, errors.GetCode(errors.InsufficientFunds("broke")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("broke", errors.GetMessage(errors.InsufficientFunds("broke")))
}
