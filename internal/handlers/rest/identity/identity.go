// Package identity читает доверенные заголовки личности. Аутентификацию
// выполняет внешний шлюз, ядро принимает заголовки как есть.
package identity

import "net/http"

const (
	HeaderUserID  = "X-User-ID"
	HeaderAgentID = "X-Agent-ID"
	HeaderAdmin   = "X-Admin"
)

func UserID(r *http.Request) string {
	return r.Header.Get(HeaderUserID)
}

func AgentID(r *http.Request) string {
	return r.Header.Get(HeaderAgentID)
}

func IsAdmin(r *http.Request) bool {
	return r.Header.Get(HeaderAdmin) == "true"
}
