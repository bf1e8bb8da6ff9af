package tagger

import (
	"errors"
	"testing"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTagger_Tag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     map[string]string
		wantType string
	}{
		{
			name:  "standard street address",
			input: "123 MAIN ST, AUSTIN, TX 78701",
			want: map[string]string{
				AddressNumber:      "123",
				StreetName:         "MAIN",
				StreetNamePostType: "ST",
				PlaceName:          "AUSTIN",
				StateName:          "TX",
				ZipCode:            "78701",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "apartment and zip plus four",
			input: "123 MAIN ST APT 456, AUSTIN, TX 78701-1234",
			want: map[string]string{
				AddressNumber:       "123",
				StreetName:          "MAIN",
				StreetNamePostType:  "ST",
				OccupancyType:       "APT",
				OccupancyIdentifier: "456",
				PlaceName:           "AUSTIN",
				StateName:           "TX",
				ZipCode:             "78701",
				ZipPlus4:            "1234",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "po box",
			input: "PO BOX 123, AUSTIN, TX 78701",
			want: map[string]string{
				USPSBoxType: "PO BOX",
				USPSBoxID:   "123",
				PlaceName:   "AUSTIN",
				StateName:   "TX",
				ZipCode:     "78701",
			},
			wantType: constants.AddressTypePOBox,
		},
		{
			name:  "directionals",
			input: "500 N ELM ST SW, DALLAS, TX 75201",
			want: map[string]string{
				AddressNumber:             "500",
				StreetNamePreDirectional:  "N",
				StreetName:                "ELM",
				StreetNamePostType:        "ST",
				StreetNamePostDirectional: "SW",
				PlaceName:                 "DALLAS",
				StateName:                 "TX",
				ZipCode:                   "75201",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "no commas",
			input: "123 MAIN ST AUSTIN TX 78701",
			want: map[string]string{
				AddressNumber:      "123",
				StreetName:         "MAIN",
				StreetNamePostType: "ST",
				PlaceName:          "AUSTIN",
				StateName:          "TX",
				ZipCode:            "78701",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "full state name and multi word city",
			input: "1600 PENNSYLVANIA AVE, SAN ANTONIO, NEW MEXICO",
			want: map[string]string{
				AddressNumber:      "1600",
				StreetName:         "PENNSYLVANIA",
				StreetNamePostType: "AVE",
				PlaceName:          "SAN ANTONIO",
				StateName:          "NEW MEXICO",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "abbreviated directional state name",
			input: "9 OAK LN, RALEIGH, N CAROLINA 27601",
			want: map[string]string{
				AddressNumber:      "9",
				StreetName:         "OAK",
				StreetNamePostType: "LN",
				PlaceName:          "RALEIGH",
				StateName:          "N CAROLINA",
				ZipCode:            "27601",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "hash unit",
			input: "77 PINE RD #4, BOISE, ID 83702",
			want: map[string]string{
				AddressNumber:       "77",
				StreetName:          "PINE",
				StreetNamePostType:  "RD",
				OccupancyIdentifier: "#4",
				PlaceName:           "BOISE",
				StateName:           "ID",
				ZipCode:             "83702",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "intersection",
			input: "MAIN ST & 5TH AVE, AUSTIN, TX 78701",
			want: map[string]string{
				StreetName:               "MAIN",
				StreetNamePostType:       "ST",
				IntersectionSeparator:    "&",
				SecondStreetName:         "5TH",
				SecondStreetNamePostType: "AVE",
				PlaceName:                "AUSTIN",
				StateName:                "TX",
				ZipCode:                  "78701",
			},
			wantType: constants.AddressTypeIntersection,
		},
		{
			name:  "court is a street type without zip or comma",
			input: "12 OAK CT",
			want: map[string]string{
				AddressNumber:      "12",
				StreetName:         "OAK",
				StreetNamePostType: "CT",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "lowercase input is upper cased",
			input: "42 elm st., springfield, il 62701",
			want: map[string]string{
				AddressNumber:      "42",
				StreetName:         "ELM",
				StreetNamePostType: "ST",
				PlaceName:          "SPRINGFIELD",
				StateName:          "IL",
				ZipCode:            "62701",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "unknown state code before zip",
			input: "123 MAIN ST, AUSTIN, ZZ 78701",
			want: map[string]string{
				AddressNumber:      "123",
				StreetName:         "MAIN",
				StreetNamePostType: "ST",
				PlaceName:          "AUSTIN",
				StateName:          "ZZ",
				ZipCode:            "78701",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "short zip after state",
			input: "123 MAIN ST, AUSTIN, TX 787",
			want: map[string]string{
				AddressNumber:      "123",
				StreetName:         "MAIN",
				StreetNamePostType: "ST",
				PlaceName:          "AUSTIN",
				StateName:          "TX",
				ZipCode:            "787",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "truncated zip plus four",
			input: "123 MAIN ST, AUSTIN, TX 78701-12",
			want: map[string]string{
				AddressNumber:      "123",
				StreetName:         "MAIN",
				StreetNamePostType: "ST",
				PlaceName:          "AUSTIN",
				StateName:          "TX",
				ZipCode:            "78701-12",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "suite number after comma is not a zip",
			input: "123 MAIN ST, STE 200",
			want: map[string]string{
				AddressNumber:       "123",
				StreetName:          "MAIN",
				StreetNamePostType:  "ST",
				OccupancyType:       "STE",
				OccupancyIdentifier: "200",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:  "city starting with a street type word",
			input: "123 MAIN ST FORT WORTH TX 76102",
			want: map[string]string{
				AddressNumber:      "123",
				StreetName:         "MAIN",
				StreetNamePostType: "ST",
				PlaceName:          "FORT WORTH",
				StateName:          "TX",
				ZipCode:            "76102",
			},
			wantType: constants.AddressTypeStreet,
		},
		{
			name:     "city only",
			input:    "AUSTIN",
			want:     map[string]string{StreetName: "AUSTIN"},
			wantType: constants.AddressTypeAmbiguous,
		},
	}

	tagger := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, addressType, err := tagger.Tag(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantType, addressType)
		})
	}
}

func TestRuleTagger_Empty(t *testing.T) {
	got, addressType, err := New(nil).Tag("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, constants.AddressTypeAmbiguous, addressType)
}

func TestRuleTagger_RepeatedLabel(t *testing.T) {
	_, _, err := New(nil).Tag("123 MAIN ST, 456 OAK AVE, AUSTIN, TX 78701")
	require.Error(t, err)
	assert.True(t, errors.Is(err, business.ErrRepeatedLabel))

	var repeated *business.RepeatedLabelError
	require.True(t, errors.As(err, &repeated))
	assert.Equal(t, AddressNumber, repeated.Label)
}

func TestRuleTagger_FirstSegmentOfRepeated(t *testing.T) {
	got, _, err := New(nil).Tag("123 MAIN ST")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		AddressNumber:      "123",
		StreetName:         "MAIN",
		StreetNamePostType: "ST",
	}, got)
}

func TestTokenize(t *testing.T) {
	toks := tokenize("12 Main St. # 5, Austin, TX 78701-1234")
	texts := make([]string, 0, len(toks))
	for _, tk := range toks {
		texts = append(texts, tk.text)
	}
	assert.Equal(t, []string{"12", "MAIN", "ST", "#5", "AUSTIN", "TX", "78701", "1234"}, texts)
	assert.Equal(t, 0, toks[3].seg)
	assert.Equal(t, 1, toks[4].seg)
	assert.Equal(t, 2, toks[5].seg)
	assert.True(t, toks[7].plus4)
}
