package tagger

// Labels emitted by the tagger. They follow the usaddress vocabulary so that
// any compatible tagging backend can be swapped in behind interfaces.Tagger.
const (
	AddressNumber                   = "AddressNumber"
	StreetNamePreDirectional        = "StreetNamePreDirectional"
	StreetName                      = "StreetName"
	StreetNamePostType              = "StreetNamePostType"
	StreetNamePostDirectional       = "StreetNamePostDirectional"
	StreetNamePostModifier          = "StreetNamePostModifier"
	OccupancyType                   = "OccupancyType"
	OccupancyIdentifier             = "OccupancyIdentifier"
	USPSBoxType                     = "USPSBoxType"
	USPSBoxID                       = "USPSBoxID"
	PlaceName                       = "PlaceName"
	StateName                       = "StateName"
	ZipCode                         = "ZipCode"
	ZipPlus4                        = "ZipPlus4"
	IntersectionSeparator           = "IntersectionSeparator"
	SecondStreetNamePreDirectional  = "SecondStreetNamePreDirectional"
	SecondStreetName                = "SecondStreetName"
	SecondStreetNamePostType        = "SecondStreetNamePostType"
	SecondStreetNamePostDirectional = "SecondStreetNamePostDirectional"
)
