package pagecheck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	scrollToJS = `(y) => { window.scrollTo({top: y, behavior: "instant"}); }`

	scrollIntoViewJS = `(id) => {
		const el = document.getElementById(id);
		if (!el) return false;
		el.scrollIntoView({block: "start", behavior: "instant"});
		return true;
	}`

	measureJS = `(ids) => {
		const rects = {};
		for (const id of ids) {
			const el = document.getElementById(id);
			if (!el) continue;
			const r = el.getBoundingClientRect();
			rects[id] = {top: r.top, left: r.left, bottom: r.bottom, right: r.right};
		}
		return {
			scrollY: window.scrollY,
			width: window.innerWidth,
			height: window.innerHeight,
			docHeight: document.documentElement.scrollHeight,
			rects: rects,
		};
	}`
)

// BrowserConfig configures OpenBrowser.
type BrowserConfig struct {
	// RemoteURL is the DevTools WebSocket URL of a running Chrome. Empty
	// launches a local headless one.
	RemoteURL  string
	Width      int
	Height     int
	// NavTimeout bounds navigation and the load wait. Default 30s.
	NavTimeout time.Duration
	Logger     *slog.Logger
}

// BrowserPage is a Page backed by a Chrome tab driven through Rod.
type BrowserPage struct {
	browser *rod.Browser
	lnch    *launcher.Launcher
	page    *rod.Page
}

var _ Page = (*BrowserPage)(nil)

// OpenBrowser starts (or connects to) Chrome and loads pageURL at the
// configured viewport size.
func OpenBrowser(ctx context.Context, pageURL string, cfg BrowserConfig) (*BrowserPage, error) {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.NavTimeout <= 0 {
		cfg.NavTimeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	bp := &BrowserPage{}

	wsURL := cfg.RemoteURL
	if wsURL == "" {
		l := launcher.New().Headless(true)
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("pagecheck: launch chrome: %w", err)
		}
		wsURL = u
		bp.lnch = l
		cfg.Logger.Debug("pagecheck: launched local chrome", "url", wsURL)
	}

	browser := rod.New().ControlURL(wsURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		bp.Close()
		return nil, fmt.Errorf("pagecheck: connect: %w", err)
	}
	bp.browser = browser

	page, err := bp.browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		bp.Close()
		return nil, fmt.Errorf("pagecheck: create tab: %w", err)
	}
	bp.page = page

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             cfg.Width,
		Height:            cfg.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		bp.Close()
		return nil, fmt.Errorf("pagecheck: set viewport: %w", err)
	}

	navCtx, cancel := context.WithTimeout(ctx, cfg.NavTimeout)
	defer cancel()
	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		bp.Close()
		return nil, fmt.Errorf("pagecheck: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		cfg.Logger.Warn("pagecheck: wait load timeout", "url", pageURL, "error", err)
	}
	return bp, nil
}

func (b *BrowserPage) ScrollTo(ctx context.Context, y float64) error {
	_, err := b.page.Context(ctx).Eval(scrollToJS, y)
	return err
}

func (b *BrowserPage) ScrollIntoView(ctx context.Context, id string) error {
	res, err := b.page.Context(ctx).Eval(scrollIntoViewJS, id)
	if err != nil {
		return err
	}
	if !res.Value.Bool() {
		return fmt.Errorf("%w: %q", ErrNoElement, id)
	}
	return nil
}

func (b *BrowserPage) Measure(ctx context.Context, ids []string) (Frame, error) {
	res, err := b.page.Context(ctx).Eval(measureJS, ids)
	if err != nil {
		return Frame{}, err
	}
	var f Frame
	if err := res.Value.Unmarshal(&f); err != nil {
		return Frame{}, fmt.Errorf("pagecheck: decode frame: %w", err)
	}
	return f, nil
}

// Close shuts the tab, the browser connection and any launched Chrome.
func (b *BrowserPage) Close() error {
	var err error
	if b.page != nil {
		err = b.page.Close()
	}
	if b.browser != nil {
		if cerr := b.browser.Close(); err == nil {
			err = cerr
		}
	}
	if b.lnch != nil {
		b.lnch.Kill()
		b.lnch.Cleanup()
	}
	return err
}
