package server

import (
	"net/http"

	"sonarassist/internal/gateway/handler"
	"sonarassist/internal/gateway/handler/rpc"
	"sonarassist/internal/gateway/middleware"
)

func NewMux(
	bindingHandler *handler.BindingHandler,
	filesHandler *handler.FilesHandler,
	hostHandler *rpc.HostHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/binding/suggest", bindingHandler.HandleSuggestBinding)
	mux.HandleFunc("/api/files/list", filesHandler.HandleListFilesInScope)
	mux.HandleFunc("/ws/host", hostHandler.HandleHostWS)

	return middleware.CORS(mux)
}
