package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// CORS header names
const (
	HeaderOrigin           = "Origin"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderVary             = "Vary"
	HeaderAllowedMethods   = "GET, POST, OPTIONS"
	HeaderAllowedReqHeader = "Content-Type"
)

// MaxRequestBodyBytes caps request bodies; every legitimate body here
// is a tiny JSON document.
const MaxRequestBodyBytes = 1 << 16
