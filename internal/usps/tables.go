// Package usps holds the static USPS Publication 28 lookup tables shared by
// the tagger, validator and formatter.
package usps

import "strings"

// StreetTypes maps full street suffix names to their USPS abbreviation.
var StreetTypes = map[string]string{
	"ALLEY":      "ALY",
	"ANEX":       "ANX",
	"ANNEX":      "ANX",
	"ARCADE":     "ARC",
	"AVENUE":     "AVE",
	"BAYOU":      "BYU",
	"BEACH":      "BCH",
	"BEND":       "BND",
	"BLUFF":      "BLF",
	"BLUFFS":     "BLFS",
	"BOTTOM":     "BTM",
	"BOULEVARD":  "BLVD",
	"BRANCH":     "BR",
	"BRIDGE":     "BRG",
	"BROOK":      "BRK",
	"BROOKS":     "BRKS",
	"BURG":       "BG",
	"BURGS":      "BGS",
	"BYPASS":     "BYP",
	"BYWAY":      "BYW",
	"CAMP":       "CP",
	"CANYON":     "CYN",
	"CAPE":       "CPE",
	"CAUSEWAY":   "CSWY",
	"CENTER":     "CTR",
	"CENTERS":    "CTRS",
	"CIRCLE":     "CIR",
	"CIRCLES":    "CIRS",
	"CLIFF":      "CLF",
	"CLIFFS":     "CLFS",
	"CLOSE":      "CL",
	"CLUB":       "CLB",
	"COMMON":     "CMN",
	"COMMONS":    "CMNS",
	"CORNER":     "COR",
	"CORNERS":    "CORS",
	"COURSE":     "CRSE",
	"COURT":      "CT",
	"COURTS":     "CTS",
	"COVE":       "CV",
	"COVES":      "CVS",
	"CREEK":      "CRK",
	"CRESCENT":   "CRES",
	"CREST":      "CRST",
	"CROSSING":   "XING",
	"CROSSROAD":  "XRD",
	"CROSSROADS": "XRDS",
	"CURVE":      "CURV",
	"DALE":       "DL",
	"DAM":        "DM",
	"DIVIDE":     "DV",
	"DRIVE":      "DR",
	"DRIVES":     "DRS",
	"ESTATE":     "EST",
	"ESTATES":    "ESTS",
	"EXPRESSWAY": "EXPY",
	"EXTENSION":  "EXT",
	"EXTENSIONS": "EXTS",
	"FALL":       "FALL",
	"FALLS":      "FLS",
	"FERRY":      "FRY",
	"FIELD":      "FLD",
	"FIELDS":     "FLDS",
	"FLAT":       "FLT",
	"FLATS":      "FLTS",
	"FORD":       "FRD",
	"FORDS":      "FRDS",
	"FOREST":     "FRST",
	"FORGE":      "FRG",
	"FORGES":     "FRGS",
	"FORK":       "FRK",
	"FORKS":      "FRKS",
	"FORT":       "FT",
	"FREEWAY":    "FWY",
	"GARDEN":     "GDN",
	"GARDENS":    "GDNS",
	"GATEWAY":    "GTWY",
	"GLEN":       "GLN",
	"GLENS":      "GLNS",
	"GREEN":      "GRN",
	"GREENS":     "GRNS",
	"GROVE":      "GRV",
	"GROVES":     "GRVS",
	"HARBOR":     "HBR",
	"HARBORS":    "HBRS",
	"HAVEN":      "HVN",
	"HEIGHTS":    "HTS",
	"HIGHWAY":    "HWY",
	"HILL":       "HL",
	"HILLS":      "HLS",
	"HOLLOW":     "HOLW",
	"INLET":      "INLT",
	"ISLAND":     "IS",
	"ISLANDS":    "ISS",
	"ISLE":       "ISLE",
	"JUNCTION":   "JCT",
	"JUNCTIONS":  "JCTS",
	"KEY":        "KY",
	"KEYS":       "KYS",
	"KNOLL":      "KNL",
	"KNOLLS":     "KNLS",
	"LAKE":       "LK",
	"LAKES":      "LKS",
	"LAND":       "LAND",
	"LANDING":    "LNDG",
	"LANE":       "LN",
	"LANES":      "LNS",
	"LIGHT":      "LGT",
	"LIGHTS":     "LGTS",
	"LOAF":       "LF",
	"LOCK":       "LCK",
	"LOCKS":      "LCKS",
	"LODGE":      "LDG",
	"LOOP":       "LOOP",
	"MALL":       "MALL",
	"MANOR":      "MNR",
	"MANORS":     "MNRS",
	"MEADOW":     "MDW",
	"MEADOWS":    "MDWS",
	"MILE":       "MI",
	"MILES":      "MIS",
	"MILL":       "ML",
	"MILLS":      "MLS",
	"MISSION":    "MSN",
	"MOUNT":      "MT",
	"MOUNTAIN":   "MTN",
	"MOUNTAINS":  "MTNS",
	"NECK":       "NCK",
	"ORCHARD":    "ORCH",
	"OVAL":       "OVAL",
	"OVERPASS":   "OPAS",
	"PARK":       "PARK",
	"PARKS":      "PARK",
	"PARKWAY":    "PKWY",
	"PARKWAYS":   "PKWY",
	"PASS":       "PASS",
	"PASSAGE":    "PSGE",
	"PATH":       "PATH",
	"PIKE":       "PIKE",
	"PINE":       "PNE",
	"PINES":      "PNES",
	"PLACE":      "PL",
	"PLAIN":      "PLN",
	"PLAINS":     "PLNS",
	"PLAZA":      "PLZ",
	"POINT":      "PT",
	"POINTS":     "PTS",
	"PORT":       "PRT",
	"PORTS":      "PRTS",
	"PRAIRIE":    "PR",
	"RADIAL":     "RADL",
	"RAMP":       "RAMP",
	"RANCH":      "RNCH",
	"RAPID":      "RPD",
	"RAPIDS":     "RPDS",
	"REST":       "RST",
	"RIDGE":      "RDG",
	"RIDGES":     "RDGS",
	"RIVER":      "RIV",
	"ROAD":       "RD",
	"ROADS":      "RDS",
	"ROUTE":      "RTE",
	"ROW":        "ROW",
	"RUE":        "RUE",
	"RUN":        "RUN",
	"SHOAL":      "SHL",
	"SHOALS":     "SHLS",
	"SHORE":      "SHR",
	"SHORES":     "SHRS",
	"SKYWAY":     "SKWY",
	"SPRING":     "SPG",
	"SPRINGS":    "SPGS",
	"SPUR":       "SPUR",
	"SQUARE":     "SQ",
	"SQUARES":    "SQS",
	"STATION":    "STA",
	"STRAVENUE":  "STRA",
	"STREAM":     "STRM",
	"STREET":     "ST",
	"STREETS":    "STS",
	"SUMMIT":     "SMT",
	"TERRACE":    "TER",
	"THROUGHWAY": "TRWY",
	"TRAIL":      "TRL",
	"TRAILER":    "TRLR",
	"TUNNEL":     "TUNL",
	"TURNPIKE":   "TPKE",
	"UNDERPASS":  "UPAS",
	"UNION":      "UN",
	"UNIONS":     "UNS",
	"VALLEY":     "VLY",
	"VALLEYS":    "VLYS",
	"VIADUCT":    "VIA",
	"VIEW":       "VW",
	"VIEWS":      "VWS",
	"VILLAGE":    "VLG",
	"VILLAGES":   "VLGS",
	"VILLE":      "VL",
	"VISTA":      "VIS",
	"WALK":       "WALK",
	"WALKS":      "WALK",
	"WALL":       "WALL",
	"WAY":        "WAY",
	"WAYS":       "WAYS",
	"WELL":       "WL",
	"WELLS":      "WLS",}

// Directionals maps the eight compass words to their abbreviation.
var Directionals = map[string]string{
	"NORTH":     "N",
	"NORTHEAST": "NE",
	"EAST":      "E",
	"SOUTHEAST": "SE",
	"SOUTH":     "S",
	"SOUTHWEST": "SW",
	"WEST":      "W",
	"NORTHWEST": "NW",
}

// UnitTypes maps secondary unit designators to their abbreviation.
var UnitTypes = map[string]string{
	"APARTMENT":  "APT",
	"BASEMENT":   "BSMT",
	"BUILDING":   "BLDG",
	"DEPARTMENT": "DEPT",
	"FLOOR":      "FL",
	"FRONT":      "FRNT",
	"HANGAR":     "HNGR",
	"LOBBY":      "LBBY",
	"LOT":        "LOT",
	"LOWER":      "LOWR",
	"OFFICE":     "OFC",
	"PENTHOUSE":  "PH",
	"PIER":       "PIER",
	"REAR":       "REAR",
	"ROOM":       "RM",
	"SIDE":       "SIDE",
	"SPACE":      "SPC",
	"STOP":       "STOP",
	"SUITE":      "STE",
	"TRAILER":    "TRLR",
	"UNIT":       "UNIT",
	"UPPER":      "UPPR",
}

// States is the set of valid two-letter codes: 50 states, DC and 5 territories.
var States = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {}, "AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

// StateNames maps full state and territory names to their code.
var StateNames = map[string]string{
	"ALABAMA":                  "AL",
	"ALASKA":                   "AK",
	"ARIZONA":                  "AZ",
	"ARKANSAS":                 "AR",
	"CALIFORNIA":               "CA",
	"COLORADO":                 "CO",
	"CONNECTICUT":              "CT",
	"DELAWARE":                 "DE",
	"FLORIDA":                  "FL",
	"GEORGIA":                  "GA",
	"HAWAII":                   "HI",
	"IDAHO":                    "ID",
	"ILLINOIS":                 "IL",
	"INDIANA":                  "IN",
	"IOWA":                     "IA",
	"KANSAS":                   "KS",
	"KENTUCKY":                 "KY",
	"LOUISIANA":                "LA",
	"MAINE":                    "ME",
	"MARYLAND":                 "MD",
	"MASSACHUSETTS":            "MA",
	"MICHIGAN":                 "MI",
	"MINNESOTA":                "MN",
	"MISSISSIPPI":              "MS",
	"MISSOURI":                 "MO",
	"MONTANA":                  "MT",
	"NEBRASKA":                 "NE",
	"NEVADA":                   "NV",
	"NEW HAMPSHIRE":            "NH",
	"NEW JERSEY":               "NJ",
	"NEW MEXICO":               "NM",
	"NEW YORK":                 "NY",
	"NORTH CAROLINA":           "NC",
	"NORTH DAKOTA":             "ND",
	"OHIO":                     "OH",
	"OKLAHOMA":                 "OK",
	"OREGON":                   "OR",
	"PENNSYLVANIA":             "PA",
	"RHODE ISLAND":             "RI",
	"SOUTH CAROLINA":           "SC",
	"SOUTH DAKOTA":             "SD",
	"TENNESSEE":                "TN",
	"TEXAS":                    "TX",
	"UTAH":                     "UT",
	"VERMONT":                  "VT",
	"VIRGINIA":                 "VA",
	"WASHINGTON":               "WA",
	"WEST VIRGINIA":            "WV",
	"WISCONSIN":                "WI",
	"WYOMING":                  "WY",
	"DISTRICT OF COLUMBIA":     "DC",
	"AMERICAN SAMOA":           "AS",
	"GUAM":                     "GU",
	"NORTHERN MARIANA ISLANDS": "MP",
	"PUERTO RICO":              "PR",
	"VIRGIN ISLANDS":           "VI",
}

// stateNameAliases covers full names after directional words were
// abbreviated by preprocessing ("NORTH CAROLINA" becomes "N CAROLINA").
var stateNameAliases = map[string]string{
	"N CAROLINA": "NC",
	"N DAKOTA":   "ND",
	"S CAROLINA": "SC",
	"S DAKOTA":   "SD",
	"W VIRGINIA": "WV",
}

// LongestStateName is the word count of the longest entry in StateNames.
const LongestStateName = 3

// StateCode resolves a two-letter code or a full name (case-insensitive)
// to its code.
func StateCode(s string) (string, bool) {
	s = strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if _, ok := States[s]; ok {
		return s, true
	}
	if code, ok := StateNames[s]; ok {
		return code, true
	}
	code, ok := stateNameAliases[s]
	return code, ok
}

// IsStreetType reports whether word is a street suffix, full or abbreviated.
func IsStreetType(word string) bool {
	if _, ok := StreetTypes[word]; ok {
		return true
	}
	_, ok := streetTypeAbbrevs[word]
	return ok
}

// IsDirectional reports whether word is a compass direction, full or abbreviated.
func IsDirectional(word string) bool {
	if _, ok := Directionals[word]; ok {
		return true
	}
	_, ok := directionalAbbrevs[word]
	return ok
}

// IsUnitType reports whether word is a secondary unit designator.
func IsUnitType(word string) bool {
	if _, ok := UnitTypes[word]; ok {
		return true
	}
	_, ok := unitTypeAbbrevs[word]
	return ok
}

var (
	streetTypeAbbrevs  = invert(StreetTypes)
	directionalAbbrevs = invert(Directionals)
	unitTypeAbbrevs    = invert(UnitTypes)
)

func invert(m map[string]string) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for _, v := range m {
		out[v] = struct{}{}
	}
	return out
}
