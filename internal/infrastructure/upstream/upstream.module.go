package upstream

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
)

var Module = fx.Options(
	fx.Provide(NewUpstreamClient),
)

func NewUpstreamClient(cfg *config.Config, log *zap.Logger) *Client {
	upstreamCfg := cfg.GetUpstream()
	return NewClient(ClientConfig{
		BaseURL:  upstreamCfg.BaseURL,
		APIToken: upstreamCfg.APIToken,
		Timeout:  upstreamCfg.Timeout,
	}, log)
}
