package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/mocks"
	"github.com/address-cleanser/address-cleanser/internal/services"
	"github.com/address-cleanser/address-cleanser/internal/tagger"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPipeline() *services.Pipeline {
	return services.NewPipeline(tagger.New(nil), nil)
}

func TestPipeline_Process_StandardAddress(t *testing.T) {
	result := newPipeline().Process("123   Main   Street,  Austin , TX 78701")

	assert.Equal(t, "123 MAIN ST, AUSTIN, TX 78701", result.SingleLine)
	assert.Equal(t, []string{"123 MAIN ST", "AUSTIN TX 78701"}, result.MultiLine)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, constants.AddressTypeStreet, result.AddressType)
	assert.Equal(t, 100.0, result.Confidence)
	assert.Equal(t, business.Components{
		StreetNumber: "123",
		StreetName:   "MAIN",
		StreetType:   "ST",
		City:         "AUSTIN",
		State:        "TX",
		ZipCode:      "78701",
	}, result.Parsed)
}

func TestPipeline_Process_Unit(t *testing.T) {
	result := newPipeline().Process("123 Main St Apt 456, Austin, TX 78701")

	assert.Equal(t, "APT 456", result.Parsed.Unit)
	assert.Contains(t, result.SingleLine, "APT 456")
	assert.True(t, result.Valid)
}

func TestPipeline_Process_POBox(t *testing.T) {
	for _, input := range []string{
		"PO Box 123, Austin, TX 78701",
		"P.O. Box 123, Austin, TX 78701",
		"Post Office Box 123, Austin, TX 78701",
	} {
		t.Run(input, func(t *testing.T) {
			result := newPipeline().Process(input)

			assert.Equal(t, "123", result.Parsed.POBox)
			assert.Contains(t, result.SingleLine, "PO BOX")
			assert.Equal(t, "PO BOX 123, AUSTIN, TX 78701", result.SingleLine)
			assert.Equal(t, []string{"PO BOX 123", "AUSTIN TX 78701"}, result.MultiLine)
			assert.Equal(t, constants.AddressTypePOBox, result.AddressType)
			assert.True(t, result.Valid)
		})
	}
}

func TestPipeline_Process_InvalidInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		result := newPipeline().Process(input)

		assert.Zero(t, result.Confidence)
		assert.False(t, result.Valid)
		assert.Equal(t, []string{business.ErrInvalidInput.Error()}, result.Issues)
		assert.True(t, result.HasError())
	}
}

func TestPipeline_Process_IncompleteAddress(t *testing.T) {
	result := newPipeline().Process("Main Street")

	assert.False(t, result.Valid)
	assert.Equal(t, "MAIN ST", result.SingleLine)
	assert.Contains(t, result.Issues, "ZIP code is missing")
	assert.Contains(t, result.Issues, "State is missing")
	assert.Contains(t, result.Issues, "Missing required fields: street_number, city, state")
	assert.False(t, result.HasError())
}

func TestPipeline_Process_MalformedStateOrZip(t *testing.T) {
	tests := []struct {
		input     string
		wantIssue string
		wantState string
		wantZip   string
	}{
		{"123 Main St, Austin, ZZ 78701", "Invalid state: ZZ.", "ZZ", "78701"},
		{"123 Main St, Austin, TX 787", "Invalid ZIP code format: 787.", "TX", "787"},
		{"123 Main St, Austin, TX 78701-12", "Invalid ZIP code format: 78701-12.", "TX", "78701-12"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := newPipeline().Process(tt.input)

			assert.False(t, result.Valid)
			assert.Equal(t, "AUSTIN", result.Parsed.City)
			assert.Equal(t, tt.wantState, result.Parsed.State)
			assert.Equal(t, tt.wantZip, result.Parsed.ZipCode)
			assert.NotContains(t, result.Issues, "ZIP code is missing")
			assert.NotContains(t, result.Issues, "State is missing")

			found := false
			for _, issue := range result.Issues {
				if strings.HasPrefix(issue, tt.wantIssue) {
					found = true
				}
			}
			assert.True(t, found, "issues %v should start with %q", result.Issues, tt.wantIssue)
		})
	}
}

func TestPipeline_Process_CityWithStreetTypeWord(t *testing.T) {
	result := newPipeline().Process("123 Main St Fort Worth TX 76102")

	assert.Equal(t, "123 MAIN ST, FORT WORTH, TX 76102", result.SingleLine)
	assert.Equal(t, "FORT WORTH", result.Parsed.City)
	assert.True(t, result.Valid)
}

func TestPipeline_Process_UnparseableAddress(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)
	mockTagger.EXPECT().Tag(gomock.Any()).
		Return(nil, "", &business.RepeatedLabelError{Label: tagger.StreetName}).
		Times(4)

	result := services.NewPipeline(mockTagger, nil).Process("1 A, B")

	assert.False(t, result.Valid)
	assert.Zero(t, result.Confidence)
	require.NotEmpty(t, result.Issues)
	assert.True(t, strings.HasPrefix(result.Issues[0], "Could not parse address: "))
	assert.True(t, result.HasError())
}

func TestPipeline_Process_TaggerPanicIsContained(t *testing.T) {
	mockTagger := mocks.NewMockTaggerForTest(t)
	mockTagger.EXPECT().Tag(gomock.Any()).DoAndReturn(func(string) (map[string]string, string, error) {
		panic("corrupt model")
	})

	var result business.FormattedAddress
	require.NotPanics(t, func() {
		result = services.NewPipeline(mockTagger, nil).Process("1 Main St")
	})

	assert.False(t, result.Valid)
	assert.Zero(t, result.Confidence)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "corrupt model")
}

func TestPipeline_Process_GeneratedStandardAddresses(t *testing.T) {
	faker := gofakeit.New(7)
	streetTypes := []string{"St", "Street", "Ave", "Avenue", "Blvd", "Rd", "Dr", "Ln"}
	pipeline := newPipeline()

	for i := 0; i < 100; i++ {
		input := fmt.Sprintf("%d %s %s, %s, %s %05d",
			faker.Number(1, 9999),
			faker.LastName(),
			streetTypes[faker.Number(0, len(streetTypes)-1)],
			faker.City(),
			faker.StateAbr(),
			faker.Number(501, 99950),
		)

		result := pipeline.Process(input)

		assert.NotEmpty(t, result.Parsed.StreetNumber, input)
		assert.NotEmpty(t, result.Parsed.City, input)
		assert.NotEmpty(t, result.Parsed.State, input)
		assert.NotEmpty(t, result.Parsed.ZipCode, input)
		assert.Greater(t, result.Confidence, 0.0, input)
	}
}
