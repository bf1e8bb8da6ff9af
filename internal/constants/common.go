package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	DevEnvironment   = "dev"
	LocalEnvironment = "local"

	// Service identity
	ServiceName    = "address-cleanser"
	ServiceVersion = "1.0.12"
	APITitle       = "Address Cleanser API"
)

// Address types reported by the tagger
const (
	AddressTypeStreet       = "Street Address"
	AddressTypePOBox        = "PO Box"
	AddressTypeIntersection = "Intersection"
	AddressTypeAmbiguous    = "Ambiguous"
	AddressTypeUnknown      = "Unknown"
	AddressTypeError        = "Error"
)

// Output formats accepted by the CLI and the upload endpoint
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatExcel = "excel"
)

// Issue messages shared by the pipeline and the service layer
const (
	NoParsedComponentsMsg = "No parsed components"
)

// Route paths referenced outside the router
const (
	APIPrefix   = "/api/v1"
	RootPath    = "/"
	HealthPath  = APIPrefix + "/health"
	DocsPath    = "/docs"
	SwaggerPath = "/swagger"
)

// Header names
const (
	APIKeyHeader        = "X-API-Key"
	CorrelationIDHeader = "X-Correlation-ID"
)
