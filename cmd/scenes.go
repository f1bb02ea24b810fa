package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes prints the built-in scenes and the scene files in --scenes-dir.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeSceneTable(&buf, scenes)
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

func writeSceneTable(buf *bytes.Buffer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Description"})
	for _, s := range scenes {
		id := s.ID
		if s.FilePath != "" {
			id = s.FilePath
		}
		table.Append([]string{id, s.Name, s.Type, s.Description})
	}
	table.Render()
}
