//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.3 init --generalInfo main.go --output docs --outputTypes go

package main

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mager/sleeve/analyzer"
	"github.com/mager/sleeve/config"
	"github.com/mager/sleeve/cover"
	"github.com/mager/sleeve/elevenlabs"
	"github.com/mager/sleeve/fal"
	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/handler/analyze"
	"github.com/mager/sleeve/handler/covers"
	"github.com/mager/sleeve/handler/health"
	"github.com/mager/sleeve/handler/music"
	"github.com/mager/sleeve/handler/orchestral"
	"github.com/mager/sleeve/handler/palettes"
	"github.com/mager/sleeve/handler/swagger"
	"github.com/mager/sleeve/handler/video"
	"github.com/mager/sleeve/httpclient"
	"github.com/mager/sleeve/logger"
	"github.com/mager/sleeve/musicbrainz"
	"github.com/mager/sleeve/palette"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string

	// Methods reports the HTTP methods this route accepts.
	Methods() []string
}

//	@title			Sleeve
//	@version		1.0
//	@description	Album cover, music and video generation for uploaded tracks

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			httpclient.Options,
			palette.Options,
			musicbrainz.Options,
			analyzer.Options,
			gemini.Options,
			elevenlabs.Options,
			fal.Options,

			AsRoute(health.NewHealthHandler),
			AsRoute(analyze.NewAnalyzeHandler),
			AsRoute(palettes.NewPalettesHandler),
			AsRoute(covers.NewTemplatesHandler),
			AsRoute(covers.NewAIHandler),
			AsRoute(covers.NewEditHandler),
			AsRoute(covers.NewExportHandler),
			AsRoute(music.NewMusicHandler),
			AsRoute(orchestral.NewOrchestralHandler),
			AsRoute(video.NewVideoHandler),
			AsRoute(video.NewStreamHandler),
			AsRoute(swagger.NewDocHandler),
		),
		fx.Provide(cover.Options...),
		fx.WithLogger(func(log *zap.SugaredLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Desugar()}
		}),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

type ServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *zap.SugaredLogger
	Routes    []Route `group:"routes"`
}

func NewHTTPServer(p ServerParams) *http.Server {
	router := NewRouter(p.Routes)

	srv := &http.Server{Addr: p.Config.Addr, Handler: jsonMiddleware(router)}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			p.Logger.Infow("Starting HTTP server", "addr", srv.Addr, "routes", len(p.Routes))
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// NewRouter registers every route on a gorilla/mux router.
func NewRouter(routes []Route) *mux.Router {
	router := mux.NewRouter()
	for _, route := range routes {
		r := router.Handle(route.Pattern(), route)
		if methods := route.Methods(); len(methods) > 0 {
			r.Methods(methods...)
		}
	}
	return router
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
