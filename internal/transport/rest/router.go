package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SiphoChris/afrilex/internal/transport/middleware"
)

const (
	apiPrefix  = "/api/v1"
	browsePath = apiPrefix + "/browse"
	uuidVar    = "{id:[0-9a-fA-F-]{36}}"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Dictionary *DictionaryHandler
	Word       *WordHandler
	Browse     *BrowseHandler
	Admin      *AdminHandler
	// GraphQL serves the admin read queries; nil leaves it unmounted.
	GraphQL http.Handler
}

// RouterOptions carries the per-route middleware.
type RouterOptions struct {
	// PublicLimit throttles the anonymous reading endpoints.
	PublicLimit middleware.Middleware
	// UploadLimit throttles audio uploads.
	UploadLimit middleware.Middleware
	// Loaders installs request-scoped batch loaders on list endpoints.
	Loaders middleware.Middleware
	// MediaPrefix is the path audio files are served under.
	MediaPrefix string
}

// NewRouter mounts every endpoint.
//
// Public:
//
//	GET  /live /ready /health
//	GET  /api/v1/languages
//	GET  /api/v1/dictionaries, /api/v1/dictionaries/defaults, /api/v1/dictionaries/{lang}
//	GET  /api/v1/browse, /api/v1/browse/letters
//	POST /api/v1/browse/preferences
//	GET  {MediaPrefix}{id}
//
// Authenticated:
//
//	GET  /api/v1/me
//
// Admin: everything under /api/v1/admin, including POST /api/v1/admin/graphql.
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	opts = opts.withDefaults()
	router := mux.NewRouter()

	// Health
	router.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	router.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	// Media
	router.Handle(opts.MediaPrefix+uuidVar, opts.PublicLimit(http.HandlerFunc(h.Word.Audio))).Methods(http.MethodGet)

	api := router.PathPrefix(apiPrefix).Subrouter()

	// Public reading surface
	public := api.NewRoute().Subrouter()
	public.Use(mux.MiddlewareFunc(opts.PublicLimit))
	public.HandleFunc("/languages", h.Dictionary.Languages).Methods(http.MethodGet)
	public.HandleFunc("/dictionaries", h.Dictionary.List).Methods(http.MethodGet)
	public.HandleFunc("/dictionaries/defaults", h.Dictionary.Defaults).Methods(http.MethodGet)
	public.HandleFunc("/dictionaries/{lang}", h.Dictionary.Get).Methods(http.MethodGet)
	public.HandleFunc("/browse", h.Browse.Browse).Methods(http.MethodGet)
	public.HandleFunc("/browse/letters", h.Browse.Letters).Methods(http.MethodGet)
	public.HandleFunc("/browse/preferences", h.Browse.SetPreferences).Methods(http.MethodPost)

	api.HandleFunc("/me", h.Admin.Me).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/dashboard", h.Admin.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/users", h.Admin.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/"+uuidVar+"/role", h.Admin.SetUserRole).Methods(http.MethodPut)

	if h.GraphQL != nil {
		admin.Handle("/graphql", opts.Loaders(h.GraphQL)).Methods(http.MethodPost)
	}

	// Dictionaries
	admin.HandleFunc("/dictionaries", h.Dictionary.Create).Methods(http.MethodPost)
	admin.HandleFunc("/dictionaries/"+uuidVar, h.Dictionary.GetByID).Methods(http.MethodGet)
	admin.HandleFunc("/dictionaries/"+uuidVar, h.Dictionary.Update).Methods(http.MethodPut)
	admin.HandleFunc("/dictionaries/"+uuidVar, h.Dictionary.Delete).Methods(http.MethodDelete)

	dd := admin.PathPrefix("/dictionary-drafts").Subrouter()
	dd.HandleFunc("", h.Dictionary.OpenDraft).Methods(http.MethodPost)
	dd.HandleFunc("/"+uuidVar, h.Dictionary.GetDraft).Methods(http.MethodGet)
	dd.HandleFunc("/"+uuidVar, h.Dictionary.DiscardDraft).Methods(http.MethodDelete)
	dd.HandleFunc("/"+uuidVar+"/basic", h.Dictionary.SetBasicInfo).Methods(http.MethodPatch)
	dd.HandleFunc("/"+uuidVar+"/labels/{key}", h.Dictionary.SetUILabel).Methods(http.MethodPut)
	dd.HandleFunc("/"+uuidVar+"/flags", h.Dictionary.SetFlags).Methods(http.MethodPut)
	dd.HandleFunc("/"+uuidVar+"/tracks/number/{index:[0-9]+}/class", h.Dictionary.SetNumberClass).Methods(http.MethodPut)
	dd.HandleFunc("/"+uuidVar+"/tracks/{track}", h.Dictionary.AddTrackOption).Methods(http.MethodPost)
	dd.HandleFunc("/"+uuidVar+"/tracks/{track}/{index:[0-9]+}", h.Dictionary.RemoveTrackOption).Methods(http.MethodDelete)
	dd.HandleFunc("/"+uuidVar+"/properties", h.Dictionary.AddCustomProperty).Methods(http.MethodPost)
	dd.HandleFunc("/"+uuidVar+"/properties/{index:[0-9]+}", h.Dictionary.RemoveCustomProperty).Methods(http.MethodDelete)
	dd.HandleFunc("/"+uuidVar+"/submit", h.Dictionary.SubmitDraft).Methods(http.MethodPost)

	// Words
	admin.Handle("/words", opts.Loaders(http.HandlerFunc(h.Word.List))).Methods(http.MethodGet)
	admin.HandleFunc("/words", h.Word.Create).Methods(http.MethodPost)
	admin.HandleFunc("/words/"+uuidVar, h.Word.Get).Methods(http.MethodGet)
	admin.HandleFunc("/words/"+uuidVar, h.Word.Update).Methods(http.MethodPut)
	admin.HandleFunc("/words/"+uuidVar, h.Word.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/words/"+uuidVar+"/issues", h.Word.Issues).Methods(http.MethodGet)
	admin.HandleFunc("/words/"+uuidVar+"/publish", h.Word.SetPublished).Methods(http.MethodPut)

	wd := admin.PathPrefix("/word-drafts").Subrouter()
	wd.HandleFunc("", h.Word.OpenDraft).Methods(http.MethodPost)
	wd.HandleFunc("/"+uuidVar, h.Word.GetDraft).Methods(http.MethodGet)
	wd.HandleFunc("/"+uuidVar, h.Word.DiscardDraft).Methods(http.MethodDelete)
	wd.HandleFunc("/"+uuidVar+"/fields", h.Word.SetField).Methods(http.MethodPatch)
	wd.HandleFunc("/"+uuidVar+"/groups/{group}", h.Word.AddEntry).Methods(http.MethodPost)
	wd.HandleFunc("/"+uuidVar+"/groups/{group}/{index:[0-9]+}", h.Word.RemoveEntry).Methods(http.MethodDelete)
	wd.HandleFunc("/"+uuidVar+"/syllables", h.Word.AddSyllable).Methods(http.MethodPost)
	wd.HandleFunc("/"+uuidVar+"/syllable-buffer", h.Word.SetSyllableBuffer).Methods(http.MethodPut)
	wd.HandleFunc("/"+uuidVar+"/syllable-buffer/commit", h.Word.CommitSyllableBuffer).Methods(http.MethodPost)
	wd.Handle("/"+uuidVar+"/audio", opts.UploadLimit(http.HandlerFunc(h.Word.AttachAudio))).Methods(http.MethodPost)
	wd.HandleFunc("/"+uuidVar+"/submit", h.Word.SubmitDraft).Methods(http.MethodPost)

	return router
}

func (o RouterOptions) withDefaults() RouterOptions {
	if o.PublicLimit == nil {
		o.PublicLimit = middleware.Passthrough
	}
	if o.UploadLimit == nil {
		o.UploadLimit = middleware.Passthrough
	}
	if o.Loaders == nil {
		o.Loaders = middleware.Passthrough
	}
	if o.MediaPrefix == "" {
		o.MediaPrefix = "/media/audio/"
	}
	return o
}
