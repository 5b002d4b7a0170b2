package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"travel-assistant/pkg/log"
	"travel-assistant/pkg/telegram"
)

const (
	ngrokAPIBase       = "http://ngrok:4040"
	ngrokAttempts      = 10
	ngrokRetryDelay    = 3 * time.Second
	webhookPath        = "/webhook/telegram"
	ngrokProtoHTTPS    = "https"
	ngrokClientTimeout = 5 * time.Second
)

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// registerWebhook points Telegram at this service. Without an explicit URL the
// public address is taken from a local ngrok agent. Runs in the background.
func registerWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, webhookURL, secret string) {
	go func() {
		url := webhookURL
		if url == "" {
			base, err := detectNgrokURL(ctx, ngrokAPIBase)
			if err != nil {
				l.Warnf(ctx, "Could not detect ngrok URL, Telegram webhook not registered: %v", err)
				return
			}
			url = base + webhookPath
			l.Infof(ctx, "Auto-detected ngrok URL: %s", url)
		}

		if err := bot.SetWebhook(ctx, url, secret); err != nil {
			l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			return
		}
		l.Infof(ctx, "✅ Telegram webhook registered at %s", url)
	}()
}

// detectNgrokURL polls the ngrok local API until a tunnel appears, preferring HTTPS.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: ngrokClientTimeout}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryDelay):
			}
		}

		tunnels, err := fetchTunnels(ctx, client, apiBase+"/api/tunnels")
		if err != nil {
			lastErr = err
			continue
		}
		for _, t := range tunnels.Tunnels {
			if t.Proto == ngrokProtoHTTPS {
				return t.PublicURL, nil
			}
		}
		if len(tunnels.Tunnels) > 0 {
			return tunnels.Tunnels[0].PublicURL, nil
		}
		lastErr = fmt.Errorf("no active tunnels")
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnels(ctx context.Context, client *http.Client, url string) (ngrokTunnels, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ngrokTunnels{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return ngrokTunnels{}, err
	}
	defer resp.Body.Close()

	var out ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ngrokTunnels{}, fmt.Errorf("decode tunnels: %w", err)
	}
	return out, nil
}
