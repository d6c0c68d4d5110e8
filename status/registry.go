package status

// Standard codes, named for use at call sites.
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101

	OK                   Code = 200
	Created              Code = 201
	Accepted             Code = 202
	NonAuthoritativeInfo Code = 203
	NoContent            Code = 204
	ResetContent         Code = 205
	PartialContent       Code = 206

	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest           Code = 400
	Unauthorized         Code = 401
	PaymentRequired      Code = 402
	Forbidden            Code = 403
	NotFound             Code = 404
	MethodNotAllowed     Code = 405
	NotAcceptable        Code = 406
	ProxyAuthRequired    Code = 407
	RequestTimeout       Code = 408
	Conflict             Code = 409
	Gone                 Code = 410
	LengthRequired       Code = 411
	PreconditionFailed   Code = 412
	ContentTooLarge      Code = 413
	RequestURITooLong    Code = 414
	UnsupportedMediaType Code = 415
	RangeNotSatisfiable  Code = 416
	ExpectationFailed    Code = 417
	ImATeapot            Code = 418
	MisdirectedRequest   Code = 421
	UnprocessableContent Code = 422
	UpgradeRequired      Code = 426

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503
	GatewayTimeout          Code = 504
	HTTPVersionNotSupported Code = 505
)

var reasonPhrases = map[Code]string{
	Continue:           "Continue",
	SwitchingProtocols: "Switching Protocols",

	OK:                   "OK",
	Created:              "Created",
	Accepted:             "Accepted",
	NonAuthoritativeInfo: "Non-Authoritative Information",
	NoContent:            "No Content",
	ResetContent:         "Reset Content",
	PartialContent:       "Partial Content",

	MultipleChoices:   "Multiple Choices",
	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	UseProxy:          "Use Proxy",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:           "Bad Request",
	Unauthorized:         "Unauthorized",
	PaymentRequired:      "Payment Required",
	Forbidden:            "Forbidden",
	NotFound:             "Not Found",
	MethodNotAllowed:     "Method Not Allowed",
	NotAcceptable:        "Not Acceptable",
	ProxyAuthRequired:    "Proxy Authentication Required",
	RequestTimeout:       "Request Timeout",
	Conflict:             "Conflict",
	Gone:                 "Gone",
	LengthRequired:       "Length Required",
	PreconditionFailed:   "Precondition Failed",
	ContentTooLarge:      "Content Too Large",
	RequestURITooLong:    "Request URI Too Long",
	UnsupportedMediaType: "Unsupported Media Type",
	RangeNotSatisfiable:  "Range Not Satisfiable",
	ExpectationFailed:    "Expectation Failed",
	ImATeapot:            "I'm a teapot",
	MisdirectedRequest:   "Misdirected Request",
	UnprocessableContent: "Unprocessable Content",
	UpgradeRequired:      "Upgrade Required",

	InternalServerError:     "Internal Server Error",
	NotImplemented:          "Not Implemented",
	BadGateway:              "Bad Gateway",
	ServiceUnavailable:      "Service Unavailable",
	GatewayTimeout:          "Gateway Timeout",
	HTTPVersionNotSupported: "HTTP Version Not Supported",
}
