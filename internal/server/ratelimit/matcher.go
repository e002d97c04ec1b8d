package ratelimit

import "strings"

// healthPath is never throttled.
const healthPath = "/health"

// MatchEndpoint returns the configuration governing a request, or nil when none applies.
//
// An exact path match wins. Otherwise configs whose path ends in "/" match as prefixes and
// the longest such prefix wins, so "/jobs/" covers "/jobs/{id}/views".
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == healthPath && method == "GET" {
		return &EndpointConfig{}
	}

	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if best == nil || len(cfg.Path) > len(best.Path) {
				best = cfg
			}
		}
	}
	return best
}
