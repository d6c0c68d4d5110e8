package message

// Method is an HTTP request method. The set is closed: the builder
// rejects anything outside the constants below.
type Method string

const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodOptions Method = "OPTIONS"
	MethodConnect Method = "CONNECT"
	MethodTrace   Method = "TRACE"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodHead, MethodPost, MethodPut, MethodDelete,
		MethodPatch, MethodOptions, MethodConnect, MethodTrace:
		return true
	}
	return false
}

func (m Method) String() string { return string(m) }
