package wire

import (
	"net/http"
	"path/filepath"

	"goppo-soppo/internal/adaptor"
	"goppo-soppo/internal/data/repository"
	"goppo-soppo/internal/usecase"
	"goppo-soppo/pkg/mailer"
	"goppo-soppo/pkg/middleware"
	"goppo-soppo/pkg/session"
	"goppo-soppo/pkg/storage"
	"goppo-soppo/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(
	repo *repository.Repository,
	sessions session.Store,
	mail mailer.Mailer,
	files *storage.FileStore,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, sessions, mail, files, config, logger)
	handler := adaptor.NewHandler(service, files, config, logger)

	router := setupRouter(handler, sessions, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	sessions session.Store,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, sessions, config, logger)
	wirePublic(r, handler.Public, sessions, config, logger)
	wirePlaylist(r, handler.Playlist, sessions, config, logger)
	wireUser(r, handler.User, sessions, config, logger)
	wireAdmin(r, handler.Admin, sessions, config, logger)

	// Uploaded media is served straight off disk.
	serveDir(r, "/uploads", filepath.Join(config.Upload.Dir, "uploads"))
	serveDir(r, "/audio", filepath.Join(config.Upload.Dir, "audio"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Goppo Soppo API Running"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

func serveDir(r chi.Router, prefix, dir string) {
	fileServer := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})
}
