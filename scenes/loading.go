package scenes

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/foxfield/assets"
	cfg "github.com/automoto/foxfield/config"
	"github.com/automoto/foxfield/fonts"
	"github.com/automoto/foxfield/logging"
	"github.com/automoto/foxfield/network"
	"github.com/automoto/foxfield/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadWorldSource resolves src as an http(s) URL, a file on disk, or the
// name of an embedded world, in that order.
func LoadWorldSource(ctx context.Context, src string) (*leveldata.WorldData, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return leveldata.FetchWorld(ctx, nil, src)
	}
	if _, err := os.Stat(src); err == nil {
		return leveldata.LoadWorld(os.DirFS(filepath.Dir(src)), filepath.Base(src))
	}
	return assets.World(src)
}

type loadResult struct {
	world *leveldata.WorldData
	err   error
}

// LoadingScene fetches the world data in the background and retries until
// it arrives. Nothing else is shown meanwhile.
type LoadingScene struct {
	sceneChanger SceneChanger
	session      *network.Session
	source       string

	results  chan loadResult
	inFlight bool
	nextTry  time.Time
	attempts int
	lastErr  error
}

func NewLoadingScene(sc SceneChanger, session *network.Session, source string) *LoadingScene {
	return &LoadingScene{
		sceneChanger: sc,
		session:      session,
		source:       source,
		results:      make(chan loadResult, 1),
	}
}

func (ls *LoadingScene) Update() {
	now := time.Now()

	select {
	case res := <-ls.results:
		ls.inFlight = false
		if res.err == nil {
			logging.Named("loading").Infow("world loaded", "source", ls.source, "objects", len(res.world.Objects))
			ls.sceneChanger.ChangeScene(NewWorldScene(ls.sceneChanger, ls.session, res.world))
			return
		}
		ls.lastErr = res.err
		ls.nextTry = now.Add(cfg.World.RetryDelay)
		logging.Named("loading").Warnw("world unavailable, will retry", "source", ls.source, "err", res.err)
	default:
	}

	if ls.inFlight || now.Before(ls.nextTry) {
		return
	}
	ls.inFlight = true
	ls.attempts++
	go func(src string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		w, err := LoadWorldSource(ctx, src)
		ls.results <- loadResult{world: w, err: err}
	}(ls.source)
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	title := fonts.Title.Get()
	small := fonts.Small.Get()
	drawText(screen, "Loading world...", title, 32, cfg.C.Height/2-16, cfg.UI.TextColor)
	drawText(screen, fmt.Sprintf("%s (attempt %d)", ls.source, ls.attempts), small, 32, cfg.C.Height/2+12, cfg.UI.TextColor)
	if ls.lastErr != nil {
		drawText(screen, ls.lastErr.Error(), small, 32, cfg.C.Height/2+32, cfg.UI.WarningColor)
	}
}
