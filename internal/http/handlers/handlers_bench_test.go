package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func BenchmarkChatTeamRole(b *testing.B) {
	h := newTestHandler(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"siapa jungler onic"}`))
		h.Chat(rr, req)
	}
}
