package parser

import (
	"errors"
	"testing"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/mocks"
	"github.com/address-cleanser/address-cleanser/internal/tagger"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var streetTokens = map[string]string{
	tagger.AddressNumber:      "1",
	tagger.StreetName:         "A",
	tagger.StreetNamePostType: "ST",
	tagger.PlaceName:          "B",
	tagger.StateName:          "TX",
	tagger.ZipCode:            "78701",
}

func repeated(input string) error {
	return &business.RepeatedLabelError{Label: tagger.StreetName, Input: input}
}

func TestAdapter_Tag_Success(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)
	mockTagger.EXPECT().Tag("1 A ST, B, TX 78701").Return(streetTokens, constants.AddressTypeStreet, nil)

	result := NewAdapter(mockTagger, nil).Tag("  1 a st, b, tx 78701 ")

	assert.Equal(t, "  1 a st, b, tx 78701 ", result.Original)
	assert.Equal(t, streetTokens, result.Tokens)
	assert.Equal(t, constants.AddressTypeStreet, result.AddressType)
	assert.Equal(t, 100.0, result.Confidence)
	assert.Empty(t, result.Error)
	assert.Empty(t, result.ParsingStrategy)
}

func TestAdapter_Tag_EmptyInput(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		result := NewAdapter(mockTagger, nil).Tag(input)
		assert.Equal(t, business.ErrInvalidInput.Error(), result.Error)
		assert.Empty(t, result.Tokens)
		assert.Zero(t, result.Confidence)
	}
}

func TestAdapter_Tag_Fallbacks(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		setup        func(m *mocks.MockTagger)
		wantStrategy string
	}{
		{
			name:  "strip separators",
			input: "1 A & B, C",
			setup: func(m *mocks.MockTagger) {
				gomock.InOrder(
					m.EXPECT().Tag("1 A & B, C").Return(nil, "", repeated("1 A & B, C")),
					m.EXPECT().Tag("1 A B, C").Return(streetTokens, constants.AddressTypeStreet, nil),
				)
			},
			wantStrategy: "alternative_1",
		},
		{
			name:  "first segment",
			input: "1 A & B, C",
			setup: func(m *mocks.MockTagger) {
				gomock.InOrder(
					m.EXPECT().Tag("1 A & B, C").Return(nil, "", repeated("1 A & B, C")),
					m.EXPECT().Tag("1 A B, C").Return(nil, "", repeated("1 A B, C")),
					m.EXPECT().Tag("1 A & B").Return(streetTokens, constants.AddressTypeStreet, nil),
				)
			},
			wantStrategy: "alternative_2",
		},
		{
			name:  "comma spacing",
			input: "1 A ,B",
			setup: func(m *mocks.MockTagger) {
				gomock.InOrder(
					m.EXPECT().Tag("1 A ,B").Return(nil, "", repeated("1 A ,B")).Times(2),
					m.EXPECT().Tag("1 A").Return(nil, "", errors.New("boom")),
					m.EXPECT().Tag("1 A, B").Return(streetTokens, constants.AddressTypeStreet, nil),
				)
			},
			wantStrategy: "alternative_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTagger := mocks.NewMockTaggerForTest(t)
			tt.setup(mockTagger)

			result := NewAdapter(mockTagger, nil).Tag(tt.input)

			require.Empty(t, result.Error)
			assert.Equal(t, tt.wantStrategy, result.ParsingStrategy)
			assert.InDelta(t, 80.0, result.Confidence, 1e-9)
			assert.Equal(t, streetTokens, result.Tokens)
		})
	}
}

func TestAdapter_Tag_AllFallbacksFail(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)
	mockTagger.EXPECT().Tag(gomock.Any()).Return(nil, "", repeated("x")).Times(4)

	result := NewAdapter(mockTagger, nil).Tag("1 A, B")

	assert.Contains(t, result.Error, "Could not parse address: ")
	assert.Empty(t, result.Tokens)
	assert.Zero(t, result.Confidence)
}

func TestAdapter_Tag_GenericError(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)
	mockTagger.EXPECT().Tag("1 A").Return(nil, "", errors.New("model unavailable"))

	result := NewAdapter(mockTagger, nil).Tag("1 A")

	assert.Equal(t, "Parsing error: model unavailable", result.Error)
	assert.Empty(t, result.Tokens)
	assert.Zero(t, result.Confidence)
}

func TestAdapter_Tag_PanicIsRecovered(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)
	mockTagger.EXPECT().Tag("1 A").DoAndReturn(func(string) (map[string]string, string, error) {
		panic("bad state")
	})

	var result business.TaggedResult
	require.NotPanics(t, func() {
		result = NewAdapter(mockTagger, nil).Tag("1 A")
	})
	assert.Contains(t, result.Error, "bad state")
}

func TestAdapter_Tag_RuleTaggerFallsBackToFirstSegment(t *testing.T) {
	adapter := NewAdapter(tagger.New(nil), nil)

	result := adapter.Tag(Preprocess("123 Main Street, 456 Oak Avenue, Austin, TX 78701"))

	require.Empty(t, result.Error)
	assert.Equal(t, "alternative_2", result.ParsingStrategy)
	assert.Equal(t, map[string]string{
		tagger.AddressNumber:      "123",
		tagger.StreetName:         "MAIN",
		tagger.StreetNamePostType: "ST",
	}, result.Tokens)
	assert.InDelta(t, 60.0, result.Confidence, 1e-9)
}
