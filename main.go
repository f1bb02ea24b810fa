package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("pathtracer")

func newApp() *cli.App {
	// The default version flag also claims -v
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Load a built-in scene or a YAML scene description, trace it with the given
number of samples per pixel and write the result to an image file.

Flags that are not given keep the values from the scene.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderScene,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scenes-dir",
					Value: "scenes",
					Usage: "directory searched for scene files",
				},
			},
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
