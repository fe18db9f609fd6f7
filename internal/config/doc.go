// Package config provides loading and environment overlay for labelstore
// configuration. It exposes a Default() baseline, a JSON Load, and a
// FromEnv overlay of LABELSTORE_* variables.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/labelstore.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
