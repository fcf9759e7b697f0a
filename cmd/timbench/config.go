package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/koding/multiconfig"
)

type Config struct {
	Shapes []string
	Sizes  []int
	Rounds int `default:"3"`
	Seed   int64
	Logger LoggerSection
}

type LoggerSection struct {
	Dir       string `default:"logs"`
	Level     string `default:"INFO"`
	KeepHours uint   `default:"24"`
}

var C = new(Config)

func mustLoad(fpaths ...string) {
	loaders := []multiconfig.Loader{
		&multiconfig.TagLoader{},
		&multiconfig.EnvironmentLoader{},
	}

	for _, fpath := range fpaths {
		handled := false

		if strings.HasSuffix(fpath, "toml") {
			loaders = append(loaders, &multiconfig.TOMLLoader{Path: fpath})
			handled = true
		}
		if strings.HasSuffix(fpath, "json") {
			loaders = append(loaders, &multiconfig.JSONLoader{Path: fpath})
			handled = true
		}
		if strings.HasSuffix(fpath, "yaml") {
			loaders = append(loaders, &multiconfig.YAMLLoader{Path: fpath})
			handled = true
		}

		if !handled {
			fmt.Println("config file invalid, valid file exts: .toml,.json,.yaml")
			os.Exit(1)
		}
	}

	m := multiconfig.DefaultLoader{
		Loader:    multiconfig.MultiLoader(loaders...),
		Validator: multiconfig.MultiValidator(&multiconfig.RequiredValidator{}),
	}

	m.MustLoad(C)

	if len(C.Shapes) == 0 {
		C.Shapes = []string{"random", "sorted", "reversed", "kruns", "fewvalues", "sawtooth"}
	}
	if len(C.Sizes) == 0 {
		C.Sizes = []int{1000, 100000, 1000000}
	}
	if C.Seed == 0 {
		C.Seed = 42
	}
	if C.Rounds <= 0 {
		C.Rounds = 3
	}
}
