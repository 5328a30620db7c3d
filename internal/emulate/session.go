package emulate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/stupside/uaforge/internal/app"
	"github.com/stupside/uaforge/internal/identity"
)

// Report is what a page running under an emulated identity observes.
type Report struct {
	UserAgent string           `json:"user_agent"`
	Platform  string           `json:"platform"`
	Mobile    bool             `json:"mobile"`
	Brands    []identity.Brand `json:"brands"`
}

const probeJS = `(() => {
	const d = navigator.userAgentData;
	return {
		user_agent: navigator.userAgent,
		platform: navigator.platform,
		mobile: d ? d.mobile : false,
		brands: d ? d.brands : [],
	};
})()`

// Browse launches Chrome under rec's identity, opens targetURL and reports
// what the page sees through navigator.
func Browse(ctx context.Context, cfg app.BrowserConfig, rec identity.Record, targetURL, acceptLanguage string) (*Report, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, AllocatorOptions(cfg, rec)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	// Canceling a child of the task context breaks the target, so the
	// timeout is enforced from outside.
	var report Report
	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(taskCtx,
			runtime.Enable(),
			network.Enable(),
			Override(rec, acceptLanguage),
			chromedp.Navigate(targetURL),
			chromedp.Evaluate(probeJS, &report),
		)
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("browsing %s: %w", targetURL, err)
		}
	case <-time.After(cfg.Timeout):
		return nil, fmt.Errorf("browsing %s: timed out after %s", targetURL, cfg.Timeout)
	}

	slog.DebugContext(ctx, "page observed identity",
		"url", targetURL,
		"user_agent", report.UserAgent,
		"platform", report.Platform,
		"mobile", report.Mobile,
	)
	return &report, nil
}

// Matches reports whether the page observed the identity rec describes.
func (r *Report) Matches(rec identity.Record) bool {
	if r.UserAgent != rec.UserAgent || r.Platform != NavigatorPlatform(rec.MetaOS) {
		return false
	}
	if rec.Empty() {
		return true
	}
	return r.Mobile == (rec.Mobile == "?1") && len(r.Brands) == len(rec.BrandList())
}
