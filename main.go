package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/s4mli/farol/common"
	"github.com/s4mli/farol/config"
	"github.com/s4mli/farol/filtering"
	"github.com/s4mli/farol/logging"
)

const appName = "farol"

func main() {
	env := os.Getenv(fmt.Sprintf("%s_env", appName))
	if env == "" {
		env = "development"
	}
	var configFile, probe string
	flag.StringVar(&configFile, "config", "./config.yaml", "configuration file to load")
	flag.StringVar(&probe, "probe", "app", "namespace to probe")
	flag.Parse()

	snap, err := config.LoadConfig(appName, env, configFile)
	if err != nil {
		// no file, fall back to the one-shot env snapshot
		s := config.FromEnv()
		snap = &s
	}

	namespaces := []string{"app", "api", "db"}
	levels := []string{"info", "error", "debug"}
	logger := logging.New(namespaces, levels, *snap,
		logging.WithSeverityMap(map[string]filtering.Severity{
			"info":  filtering.INFO,
			"error": filtering.ERROR,
			"debug": filtering.DEBUG,
		}))

	logger.Log("app", "info")("running with %s", *snap)
	logger.Log("app", "debug")(logging.Fields{"config": configFile, "env": env},
		"configuration loaded")
	logger.Log("api", "error")("sample failure: %v", os.ErrNotExist)
	if common.IsIn(probe, namespaces) {
		for _, lvl := range levels {
			logger.Log(probe, lvl)("%s/%s enabled by pattern: %v",
				probe, lvl, logger.Enabled(probe, lvl))
		}
	}
}
