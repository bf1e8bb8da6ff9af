package business

// Field names a slot in the canonical component vocabulary.
type Field string

const (
	FieldStreetNumber            Field = "street_number"
	FieldStreetName              Field = "street_name"
	FieldStreetDirectionalPrefix Field = "street_directional_prefix"
	FieldStreetDirectionalSuffix Field = "street_directional_suffix"
	FieldStreetType              Field = "street_type"
	FieldUnit                    Field = "unit"
	FieldUnitType                Field = "unit_type"
	FieldUnitNumber              Field = "unit_number"
	FieldPOBox                   Field = "po_box"
	FieldPOBoxType               Field = "po_box_type"
	FieldCity                    Field = "city"
	FieldState                   Field = "state"
	FieldZipCode                 Field = "zip_code"
	FieldZipPlus4                Field = "zip_plus4"
)

// AllFields lists every canonical field in presentation order.
var AllFields = []Field{
	FieldStreetNumber,
	FieldStreetName,
	FieldStreetDirectionalPrefix,
	FieldStreetDirectionalSuffix,
	FieldStreetType,
	FieldUnit,
	FieldUnitType,
	FieldUnitNumber,
	FieldPOBox,
	FieldPOBoxType,
	FieldCity,
	FieldState,
	FieldZipCode,
	FieldZipPlus4,
}

// Components is the canonical, normalized view of an address. An empty
// string means the field is absent; normalization never stores an empty value.
type Components struct {
	StreetNumber            string `json:"street_number,omitempty"`
	StreetName              string `json:"street_name,omitempty"`
	StreetDirectionalPrefix string `json:"street_directional_prefix,omitempty"`
	StreetDirectionalSuffix string `json:"street_directional_suffix,omitempty"`
	StreetType              string `json:"street_type,omitempty"`
	Unit                    string `json:"unit,omitempty"`
	UnitType                string `json:"unit_type,omitempty"`
	UnitNumber              string `json:"unit_number,omitempty"`
	POBox                   string `json:"po_box,omitempty"`
	POBoxType               string `json:"po_box_type,omitempty"`
	City                    string `json:"city,omitempty"`
	State                   string `json:"state,omitempty"`
	ZipCode                 string `json:"zip_code,omitempty"`
	ZipPlus4                string `json:"zip_plus4,omitempty"`
}

func (c *Components) slot(f Field) *string {
	switch f {
	case FieldStreetNumber:
		return &c.StreetNumber
	case FieldStreetName:
		return &c.StreetName
	case FieldStreetDirectionalPrefix:
		return &c.StreetDirectionalPrefix
	case FieldStreetDirectionalSuffix:
		return &c.StreetDirectionalSuffix
	case FieldStreetType:
		return &c.StreetType
	case FieldUnit:
		return &c.Unit
	case FieldUnitType:
		return &c.UnitType
	case FieldUnitNumber:
		return &c.UnitNumber
	case FieldPOBox:
		return &c.POBox
	case FieldPOBoxType:
		return &c.POBoxType
	case FieldCity:
		return &c.City
	case FieldState:
		return &c.State
	case FieldZipCode:
		return &c.ZipCode
	case FieldZipPlus4:
		return &c.ZipPlus4
	}
	return nil
}

// Get returns the value stored for f, or "" when absent or unknown.
func (c Components) Get(f Field) string {
	if p := c.slot(f); p != nil {
		return *p
	}
	return ""
}

// Has reports whether f carries a non-empty value.
func (c Components) Has(f Field) bool {
	return c.Get(f) != ""
}

// Set stores v under f. Unknown fields are ignored.
func (c *Components) Set(f Field, v string) {
	if p := c.slot(f); p != nil {
		*p = v
	}
}

// IsEmpty reports whether no field is present.
func (c Components) IsEmpty() bool {
	for _, f := range AllFields {
		if c.Has(f) {
			return false
		}
	}
	return true
}

// Present returns the fields that carry a value, in AllFields order.
func (c Components) Present() []Field {
	var out []Field
	for _, f := range AllFields {
		if c.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// ToMap returns the present fields keyed by field name.
func (c Components) ToMap() map[string]string {
	m := make(map[string]string)
	for _, f := range c.Present() {
		m[string(f)] = c.Get(f)
	}
	return m
}
