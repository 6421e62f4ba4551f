package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/schoolreview/domain"
	"github.com/CrestNiraj12/schoolreview/infra/auth"
	"github.com/CrestNiraj12/schoolreview/infra/config"
	"github.com/CrestNiraj12/schoolreview/infra/editor"
	"github.com/CrestNiraj12/schoolreview/infra/logging"
	"github.com/CrestNiraj12/schoolreview/infra/schoolreview"
	"github.com/CrestNiraj12/schoolreview/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

// parseCLIArgs returns the mode and, for "review 42" style arguments, the
// route to open. The id is passed through untouched.
func parseCLIArgs(args []string) (cliMode, *tui.Route, string) {
	if len(args) == 0 {
		return cliRun, nil, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, nil, ""
	case "--help", "-h", "help":
		return cliHelp, nil, ""
	}

	kind, err := domain.ParseKind(args[0])
	if err != nil {
		return cliInvalid, nil, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
	if len(args) != 2 {
		return cliInvalid, nil, fmt.Sprintf("usage: %s <id>", kind.Segment())
	}
	return cliRun, &tui.Route{Kind: kind, ID: args[1]}, ""
}

func usage() string {
	return "Usage: schoolreview [review|report <id>] [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// initialRoute falls back to the last opened route.
func initialRoute(fromArgs *tui.Route, st config.UIState) *tui.Route {
	if fromArgs != nil {
		return fromArgs
	}
	if st.ID == "" {
		return nil
	}
	kind, err := domain.ParseKind(st.Kind)
	if err != nil {
		return nil
	}
	return &tui.Route{Kind: kind, ID: st.ID}
}

func main() {
	mode, route, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("SchoolReview %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Build infrastructure. A missing token file means browsing anonymously.
	tokenProvider := auth.NewFileTokenProvider(cfg.TokenPath)
	httpClient := schoolreview.NewClient(cfg.APIURL, tokenProvider,
		schoolreview.WithLogger(logger),
		schoolreview.WithAuthScheme(cfg.AuthScheme),
		schoolreview.WithTimeout(cfg.Timeout),
		schoolreview.WithRetries(cfg.Retries),
		schoolreview.WithHTTPCache(cfg.HTTPCache),
	)

	// 3. Build services (concrete types satisfy app.* interfaces).
	entitySvc := schoolreview.NewEntityService(httpClient)
	commentSvc := schoolreview.NewCommentService(httpClient)
	viewerSvc := schoolreview.NewViewerService(httpClient)
	editorSvc := editor.NewEnvEditor()

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		logger.Warn("load ui state", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("api", cfg.APIURL),
		zap.Bool("http_cache", cfg.HTTPCache),
	)

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Entities:  entitySvc,
		Comments:  commentSvc,
		Viewer:    viewerSvc,
		Editor:    editorSvc,
		Logger:    logger,
		StatePath: cfg.UIStatePath,
		Initial:   initialRoute(route, uiState),
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "schoolreview: %v\n", err)
		os.Exit(1)
	}
}
