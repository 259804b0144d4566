package xhttp

import "net/http"

const (
	Accept          = "Accept"
	Authorization   = "Authorization"
	ContentType     = "Content-Type"
	UserAgent       = "User-Agent"
	XClientSession  = "X-Client-Session-ID"
	applicationJSON = "application/json"
)

func SetRequestHeaderSessionID(r *http.Request, sessionID string) {
	r.Header.Set(XClientSession, sessionID)
}

func SetRequestHeaderAcceptJSON(r *http.Request) {
	r.Header.Set(Accept, applicationJSON)
}

func SetRequestHeaderContentTypeJSON(r *http.Request) {
	r.Header.Set(ContentType, applicationJSON)
}
